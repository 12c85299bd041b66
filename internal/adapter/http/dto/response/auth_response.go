package response

import "ordemfacil/internal/domain/entities"

type UserResponse struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
	Tipo string `json:"tipo"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromSession(s entities.Session) LoginResponse {
	return LoginResponse{
		Token: s.Token,
		User: UserResponse{
			ID:   s.UserID,
			Nome: s.Nome,
			Tipo: string(s.Tipo),
		},
	}
}
