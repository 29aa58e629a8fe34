package fatura

import (
	"github.com/ImovelarBR/api-locacao/internal/contrato"
	"github.com/shopspring/decimal"
)

// Encargo identifica um dos encargos fixos do contrato sujeitos a retenção.
type Encargo string

const (
	EncargoCondominio     Encargo = "condominio"
	EncargoFCI            Encargo = "fci"
	EncargoSeguroFianca   Encargo = "seguro-fianca"
	EncargoSeguroIncendio Encargo = "seguro-incendio"
	EncargoIPTU           Encargo = "iptu"
)

// Encargos lista os encargos fixos em ordem canônica.
var Encargos = []Encargo{
	EncargoCondominio,
	EncargoFCI,
	EncargoSeguroFianca,
	EncargoSeguroIncendio,
	EncargoIPTU,
}

// FlagsRetencao marca, por encargo, se o valor correspondente é retido do
// repasse ao proprietário. Flag sem valor de encargo definido não contribui.
type FlagsRetencao map[Encargo]bool

// TermosContrato é a fotografia imutável dos termos econômicos do contrato
// para uma prestação de contas. O cálculo nunca altera estes campos.
type TermosContrato struct {
	ValorAluguel        decimal.Decimal
	ValorCondominio     decimal.Decimal
	ValorFCI            decimal.Decimal
	ValorSeguroFianca   decimal.Decimal
	ValorSeguroIncendio decimal.Decimal
	ValorIPTU           decimal.Decimal

	// Valores pré-acordados descontados de todo repasse.
	ValorRetido     decimal.Decimal
	ValorAntecipado decimal.Decimal

	PercentualRepasse decimal.Decimal
	FormaPagamento    string
	PercentualMulta   decimal.Decimal
}

// ValorEncargo devolve o valor fixo do encargo informado.
func (t TermosContrato) ValorEncargo(e Encargo) decimal.Decimal {
	switch e {
	case EncargoCondominio:
		return t.ValorCondominio
	case EncargoFCI:
		return t.ValorFCI
	case EncargoSeguroFianca:
		return t.ValorSeguroFianca
	case EncargoSeguroIncendio:
		return t.ValorSeguroIncendio
	case EncargoIPTU:
		return t.ValorIPTU
	}
	return decimal.Zero
}

// TermosDoContrato monta a fotografia dos termos a partir do contrato.
func TermosDoContrato(c *contrato.Contrato) TermosContrato {
	return TermosContrato{
		ValorAluguel:        c.ValorAluguel,
		ValorCondominio:     c.ValorCondominio,
		ValorFCI:            c.ValorFCI,
		ValorSeguroFianca:   c.ValorSeguroFianca,
		ValorSeguroIncendio: c.ValorSeguroIncendio,
		ValorIPTU:           c.ValorIPTU,
		ValorRetido:         c.ValorRetido,
		ValorAntecipado:     c.ValorAntecipado,
		PercentualRepasse:   c.PercentualRepasse,
		FormaPagamento:      c.FormaPagamento,
		PercentualMulta:     c.PercentualMulta,
	}
}

// FlagsDoContrato monta o mapa de flags de retenção a partir do contrato.
func FlagsDoContrato(c *contrato.Contrato) FlagsRetencao {
	return FlagsRetencao{
		EncargoCondominio:     c.RetemCondominio,
		EncargoFCI:            c.RetemFCI,
		EncargoSeguroFianca:   c.RetemSeguroFianca,
		EncargoSeguroIncendio: c.RetemSeguroIncendio,
		EncargoIPTU:           c.RetemIPTU,
	}
}

// CalcularRetencoesFixas soma os encargos fixos marcados para retenção.
// Encargo sem valor positivo não contribui, mesmo com a flag ligada.
func CalcularRetencoesFixas(termos TermosContrato, flags FlagsRetencao) decimal.Decimal {
	total := decimal.Zero
	for _, e := range Encargos {
		if !flags[e] {
			continue
		}
		if v := termos.ValorEncargo(e); v.IsPositive() {
			total = total.Add(v)
		}
	}
	return total
}
