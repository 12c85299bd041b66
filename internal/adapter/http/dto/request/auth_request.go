package request

type LoginRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Senha    string `json:"senha" binding:"required"`
	Remember bool   `json:"remember"`
}

type ChangePasswordRequest struct {
	SenhaAtual string `json:"senha_atual" binding:"required"`
	NovaSenha  string `json:"nova_senha" binding:"required"`
}

type ChangeUsernameRequest struct {
	NovoNome string `json:"novo_nome" binding:"required"`
	Senha    string `json:"senha" binding:"required"`
}
