package spreadsheet

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"ordemfacil/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

var (
	ErrNoSheet          = errors.New("workbook has no sheets")
	ErrHeaderRowOutside = errors.New("selected header row does not exist in the file")
	ErrDataRowOutside   = errors.New("selected data start row does not exist in the file")
)

// ParseWorkbook reads the first sheet of an xlsx file into rows of cell
// strings. Parsing internals belong to excelize; callers only see the grid.
func ParseWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}
	return f.GetRows(sheets[0])
}

// MapRows converts a cell grid to service orders. headerRow and dataStartRow
// are 1-based, as shown to the operator. The header row maps column position
// to an uppercase field name; both accented and unaccented Portuguese
// variants are accepted. Rows without a client name are dropped.
func MapRows(rows [][]string, headerRow, dataStartRow int) ([]entities.ServiceOrder, error) {
	if headerRow < 1 || headerRow > len(rows) {
		return nil, ErrHeaderRowOutside
	}
	if dataStartRow < 1 || dataStartRow > len(rows) {
		return nil, ErrDataRowOutside
	}

	headers := rows[headerRow-1]
	var orders []entities.ServiceOrder
	for _, row := range rows[dataStartRow-1:] {
		cells := map[string]string{}
		for i, header := range headers {
			name := strings.ToUpper(strings.TrimSpace(header))
			if name == "" || i >= len(row) {
				continue
			}
			cells[name] = strings.TrimSpace(row[i])
		}

		order := entities.ServiceOrder{
			Cliente:      cells["CLIENTE"],
			Equipo:       cells["EQUIPO"],
			Defeito:      cells["DEFEITO"],
			Marca:        cells["MARCA"],
			Modelo:       cells["MODELO"],
			Configuracao: pick(cells, "CONFIGURAÇÃO", "CONFIGURACAO"),
			CheckList:    cells["CHECK_LIST"],
			Solucao:      pick(cells, "SOLUÇÃO", "SOLUCAO"),
			Orcamento:    parseFloat(pick(cells, "ORÇAMENTO", "ORCAMENTO")),
			CustoFinal:   parseFloat(cells["CUSTO_FINAL"]),
			Situacao:     pick(cells, "SITUAÇÃO", "SITUACAO"),
			Telefone:     cells["TELEFONE"],
			Status:       entities.OrderStatus(cells["STATUS"]),
			DataEntrada:  cells["DATA_ENTRADA"],
			DataSaida:    cells["DATA_SAIDA"],
			SuporteM2:    cells["SUPORTE_M2"],
			VolumeDados:  cells["VOLUME_DADOS"],
			Tecnico:      pick(cells, "TÉCNICO", "TECNICO"),
		}
		if order.Status == "" {
			order.Status = entities.OrderStatusAberto
		}
		if order.DataEntrada == "" {
			order.DataEntrada = time.Now().Format("2006-01-02")
		}
		if strings.TrimSpace(order.Cliente) == "" {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func pick(cells map[string]string, names ...string) string {
	for _, name := range names {
		if v := cells[name]; v != "" {
			return v
		}
	}
	return ""
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0
	}
	return v
}
