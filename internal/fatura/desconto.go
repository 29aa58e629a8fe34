package fatura

import (
	"time"

	"github.com/shopspring/decimal"
)

var cem = decimal.NewFromInt(100)

// AjustarValorBoleto aplica ao valor bruto da fatura o desconto de
// pontualidade ou a multa por atraso, conforme a data de pagamento.
//
// Pagamento até o dia de desconto do mês de vencimento ganha o desconto;
// pagamento após o vencimento recebe a multa de um único período (sem
// capitalização mensal). O ajuste vale só para o boleto apresentado ao
// inquilino e não entra na cadeia de retenções.
func AjustarValorBoleto(
	valor decimal.Decimal,
	diaDesconto int,
	percentualDesconto, percentualMulta decimal.Decimal,
	dataPagamento, dataVencimento time.Time,
) decimal.Decimal {
	if diaDesconto > 0 && percentualDesconto.IsPositive() {
		limite := time.Date(dataVencimento.Year(), dataVencimento.Month(), diaDesconto,
			23, 59, 59, 0, dataVencimento.Location())
		if !dataPagamento.After(limite) {
			fator := decimal.NewFromInt(1).Sub(percentualDesconto.Div(cem))
			return valor.Mul(fator).Round(2)
		}
	}
	if percentualMulta.IsPositive() && dataPagamento.After(dataVencimento) {
		fator := decimal.NewFromInt(1).Add(percentualMulta.Div(cem))
		return valor.Mul(fator).Round(2)
	}
	return valor
}
