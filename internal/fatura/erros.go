package fatura

import "errors"

var (
	// ErrValidacao indica dados de cobrança incompletos ou malformados.
	ErrValidacao = errors.New("dados de cobrança inválidos")

	// ErrModoIndisponivel indica que o modo de cobrança não se aplica ao
	// contrato. Hoje só ocorre para "entrada" em contrato que já faturou.
	ErrModoIndisponivel = errors.New("modo de cobrança indisponível para o contrato")

	// ErrFaturaInvalida indica valor bruto não positivo após os lançamentos
	// avulsos. Um contrato sempre cobra um valor positivo; repasse negativo,
	// por outro lado, é resultado legítimo.
	ErrFaturaInvalida = errors.New("fatura com valor bruto não positivo")
)
