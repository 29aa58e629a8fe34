package fatura

import (
	"time"

	"github.com/shopspring/decimal"
)

// GerarFaturaDTO é o corpo aceito na geração de uma fatura. Só os campos do
// modo escolhido são exigidos; as tarifas são opcionais e, quando ausentes,
// valem as do processo.
type GerarFaturaDTO struct {
	Modo string `json:"modo"`

	// mensal
	MesReferencia  int    `json:"mesReferencia"`
	AnoReferencia  int    `json:"anoReferencia"`
	DataVencimento string `json:"dataVencimento"` // RFC3339

	// rescisao
	DataTermino string `json:"dataTermino"` // RFC3339
	Estrategia  string `json:"estrategia"`

	// Overrides de tarifas para esta fatura
	PercentualAdmin   *float64 `json:"percentualAdmin,omitempty"`
	TaxaEmissao       *float64 `json:"taxaEmissao,omitempty"`
	TaxaTransferencia *float64 `json:"taxaTransferencia,omitempty"`
}

// Tarifas resolve a tabela de tarifas da fatura: padrão do processo com os
// overrides do corpo aplicados.
func (dto GerarFaturaDTO) Tarifas() TabelaTarifas {
	t := TarifasPadrao()
	if dto.PercentualAdmin != nil {
		t.PercentualAdmin = decimal.NewFromFloat(*dto.PercentualAdmin)
	}
	if dto.TaxaEmissao != nil {
		t.TaxaEmissao = decimal.NewFromFloat(*dto.TaxaEmissao)
	}
	if dto.TaxaTransferencia != nil {
		t.TaxaTransferencia = decimal.NewFromFloat(*dto.TaxaTransferencia)
	}
	return t
}

// ModoCobranca monta a variante de modo a partir do corpo. O histórico de
// faturamento é resolvido pelo handler e só importa para entrada.
func (dto GerarFaturaDTO) ModoCobranca(possuiFaturamento bool) Modo {
	parse := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return Modo{
		Tipo:                      dto.Modo,
		PossuiFaturamentoAnterior: possuiFaturamento,
		MesReferencia:             dto.MesReferencia,
		AnoReferencia:             dto.AnoReferencia,
		DataVencimento:            parse(dto.DataVencimento),
		DataTermino:               parse(dto.DataTermino),
		Estrategia:                dto.Estrategia,
	}
}

// BoletoDTO é a resposta da consulta de valor do boleto: o valor bruto da
// fatura ajustado por desconto de pontualidade ou multa de atraso.
type BoletoDTO struct {
	FaturaID       uint            `json:"faturaId"`
	DataVencimento time.Time       `json:"dataVencimento"`
	DataPagamento  time.Time       `json:"dataPagamento"`
	ValorBruto     decimal.Decimal `json:"valorBruto"`
	ValorBoleto    decimal.Decimal `json:"valorBoleto"`
}
