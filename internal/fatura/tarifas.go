package fatura

import (
	"os"

	"github.com/shopspring/decimal"
)

// Valores padrão das tarifas da administradora, usados quando as variáveis
// de ambiente não estão definidas.
var (
	percentualAdminPadrao   = decimal.NewFromInt(10)
	taxaEmissaoPadrao       = decimal.RequireFromString("3.50")
	taxaTransferenciaPadrao = decimal.RequireFromString("2.50")
)

// TabelaTarifas reúne as tarifas de serviço da administradora: comissão
// percentual sobre o valor bruto cobrado, taxa fixa de emissão do boleto e
// taxa fixa de transferência do repasse. As três entram sempre no total
// retido, independentemente das flags do contrato.
type TabelaTarifas struct {
	PercentualAdmin   decimal.Decimal `json:"percentualAdmin"`
	TaxaEmissao       decimal.Decimal `json:"taxaEmissao"`
	TaxaTransferencia decimal.Decimal `json:"taxaTransferencia"`
}

// TarifasPadrao carrega a tabela de tarifas do ambiente
// (TARIFA_ADMIN_PERCENTUAL, TARIFA_EMISSAO, TARIFA_TRANSFERENCIA),
// com os padrões do processo como fallback.
func TarifasPadrao() TabelaTarifas {
	return TabelaTarifas{
		PercentualAdmin:   tarifaDoAmbiente("TARIFA_ADMIN_PERCENTUAL", percentualAdminPadrao),
		TaxaEmissao:       tarifaDoAmbiente("TARIFA_EMISSAO", taxaEmissaoPadrao),
		TaxaTransferencia: tarifaDoAmbiente("TARIFA_TRANSFERENCIA", taxaTransferenciaPadrao),
	}
}

func tarifaDoAmbiente(chave string, padrao decimal.Decimal) decimal.Decimal {
	valor := os.Getenv(chave)
	if valor == "" {
		return padrao
	}
	d, err := decimal.NewFromString(valor)
	if err != nil || d.IsNegative() {
		return padrao
	}
	return d
}

// TaxaAdministracao calcula a comissão administrativa sobre o valor bruto
// final (já com os lançamentos avulsos aplicados), arredondada ao centavo.
func (t TabelaTarifas) TaxaAdministracao(valorBruto decimal.Decimal) decimal.Decimal {
	return valorBruto.Mul(t.PercentualAdmin).Div(decimal.NewFromInt(100)).Round(2)
}
