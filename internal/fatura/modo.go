package fatura

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Modos de cobrança de uma prestação de contas. Cada fatura declara
// exatamente um modo, com os dados exigidos por ele.
const (
	ModoEntrada  = "entrada"
	ModoMensal   = "mensal"
	ModoRescisao = "rescisao"
)

// Estratégias de rateio do aluguel na rescisão.
const (
	EstrategiaDiasProporcionais = "dias-proporcionais"
	EstrategiaMesIntegral       = "mes-integral"
)

// Modo descreve o modo de cobrança de uma fatura e os dados específicos
// de cada variante.
type Modo struct {
	Tipo string

	// entrada: um contrato que já possui fatura emitida não pode cobrar
	// entrada retroativamente. O chamador resolve o histórico no banco.
	PossuiFaturamentoAnterior bool

	// mensal
	MesReferencia  int
	AnoReferencia  int
	DataVencimento time.Time

	// rescisao
	DataTermino time.Time
	Estrategia  string
}

// Validar confere os dados exigidos pela variante do modo.
func (m Modo) Validar() error {
	switch m.Tipo {
	case ModoEntrada:
		if m.PossuiFaturamentoAnterior {
			return fmt.Errorf("%w: contrato já possui faturamento, entrada não pode ser cobrada", ErrModoIndisponivel)
		}
	case ModoMensal:
		if m.MesReferencia < 1 || m.MesReferencia > 12 {
			return fmt.Errorf("%w: mês de referência fora de 1..12", ErrValidacao)
		}
		if m.AnoReferencia <= 0 {
			return fmt.Errorf("%w: ano de referência obrigatório", ErrValidacao)
		}
		if m.DataVencimento.IsZero() {
			return fmt.Errorf("%w: data de vencimento obrigatória", ErrValidacao)
		}
	case ModoRescisao:
		if m.DataTermino.IsZero() {
			return fmt.Errorf("%w: data de término obrigatória", ErrValidacao)
		}
		if m.Estrategia != EstrategiaDiasProporcionais && m.Estrategia != EstrategiaMesIntegral {
			return fmt.Errorf("%w: estratégia de rateio desconhecida %q", ErrValidacao, m.Estrategia)
		}
	default:
		return fmt.Errorf("%w: modo de cobrança desconhecido %q", ErrValidacao, m.Tipo)
	}
	return nil
}

// AluguelDoPeriodo resolve o aluguel base do período. Na rescisão com
// rateio proporcional, o aluguel é multiplicado pelos dias ocupados do mês
// de término sobre o total de dias daquele mês, antes de qualquer outro
// passo do cálculo. Nos demais modos o aluguel segue inalterado.
func (m Modo) AluguelDoPeriodo(aluguel decimal.Decimal) decimal.Decimal {
	if m.Tipo != ModoRescisao || m.Estrategia != EstrategiaDiasProporcionais {
		return aluguel
	}
	ocupados := m.DataTermino.Day()
	total := diasNoMes(m.DataTermino.Year(), m.DataTermino.Month())
	return aluguel.
		Mul(decimal.NewFromInt(int64(ocupados))).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
}

func diasNoMes(ano int, mes time.Month) int {
	return time.Date(ano, mes+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
