package fatura

import (
	"errors"
	"testing"
	"time"

	"github.com/ImovelarBR/api-locacao/internal/lancamento"
	"github.com/ImovelarBR/api-locacao/internal/retencao"
	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal inválido %q: %v", s, err)
	}
	return d
}

func assertDecimal(t *testing.T, campo string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("%s = %s, esperado %s", campo, got, want)
	}
}

// Contrato de referência: aluguel 1500, condomínio 150 (retido), FCI 30,
// seguro fiança 50 (retido), seguro incêndio 25, IPTU 100 (retido).
func termosReferencia(t *testing.T) TermosContrato {
	return TermosContrato{
		ValorAluguel:        dec(t, "1500.00"),
		ValorCondominio:     dec(t, "150.00"),
		ValorFCI:            dec(t, "30.00"),
		ValorSeguroFianca:   dec(t, "50.00"),
		ValorSeguroIncendio: dec(t, "25.00"),
		ValorIPTU:           dec(t, "100.00"),
		ValorRetido:         decimal.Zero,
		ValorAntecipado:     decimal.Zero,
		PercentualRepasse:   dec(t, "100"),
		FormaPagamento:      "Boleto",
		PercentualMulta:     dec(t, "2"),
	}
}

func flagsReferencia() FlagsRetencao {
	return FlagsRetencao{
		EncargoCondominio:   true,
		EncargoSeguroFianca: true,
		EncargoIPTU:         true,
	}
}

func tarifasReferencia(t *testing.T) TabelaTarifas {
	return TabelaTarifas{
		PercentualAdmin:   dec(t, "10"),
		TaxaEmissao:       dec(t, "3.50"),
		TaxaTransferencia: dec(t, "2.50"),
	}
}

func modoMensal() Modo {
	return Modo{
		Tipo:           ModoMensal,
		MesReferencia:  6,
		AnoReferencia:  2025,
		DataVencimento: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestCalcularCenarioReferencia(t *testing.T) {
	f, err := Calcular(termosReferencia(t), flagsReferencia(), tarifasReferencia(t),
		lancamento.NovoLivro(), retencao.NovoLivro(), modoMensal())
	if err != nil {
		t.Fatalf("calcular: %v", err)
	}

	assertDecimal(t, "ValorBrutoBase", f.ValorBrutoBase, "1500.00")
	assertDecimal(t, "ValorBruto", f.ValorBruto, "1500.00")
	assertDecimal(t, "AjustesExtras", f.AjustesExtras, "0")
	assertDecimal(t, "ValorTaxaAdmin", f.ValorTaxaAdmin, "150.00")
	// 150 + 50 + 100 retidos + 150 admin + 3.50 + 2.50
	assertDecimal(t, "TotalRetido", f.TotalRetido, "456.00")
	assertDecimal(t, "RepasseLiquido", f.RepasseLiquido, "1044.00")
}

func TestCalcularComDespesaAvulsa(t *testing.T) {
	lancs := lancamento.NovoLivro()
	if _, err := lancs.Adicionar(lancamento.TipoDespesa, "Reparo hidráulico", dec(t, "50.00")); err != nil {
		t.Fatalf("adicionar despesa: %v", err)
	}

	f, err := Calcular(termosReferencia(t), flagsReferencia(), tarifasReferencia(t),
		lancs, retencao.NovoLivro(), modoMensal())
	if err != nil {
		t.Fatalf("calcular: %v", err)
	}

	assertDecimal(t, "ValorBruto", f.ValorBruto, "1450.00")
	assertDecimal(t, "AjustesExtras", f.AjustesExtras, "-50.00")
	// Comissão incide sobre o bruto final, já com a despesa abatida.
	assertDecimal(t, "ValorTaxaAdmin", f.ValorTaxaAdmin, "145.00")
	assertDecimal(t, "TotalRetido", f.TotalRetido, "451.00")
	assertDecimal(t, "RepasseLiquido", f.RepasseLiquido, "999.00")
}

func TestCalcularBaselineSemRetencoes(t *testing.T) {
	f, err := Calcular(termosReferencia(t), FlagsRetencao{}, tarifasReferencia(t),
		lancamento.NovoLivro(), retencao.NovoLivro(), modoMensal())
	if err != nil {
		t.Fatalf("calcular: %v", err)
	}
	assertDecimal(t, "ValorBruto", f.ValorBruto, "1500.00")
	// Só comissão e taxas fixas: 150 + 3.50 + 2.50
	assertDecimal(t, "TotalRetido", f.TotalRetido, "156.00")
	assertDecimal(t, "RepasseLiquido", f.RepasseLiquido, "1344.00")
}

func TestFlagSemEncargoNaoContribui(t *testing.T) {
	termos := termosReferencia(t)
	termos.ValorCondominio = decimal.Zero

	total := CalcularRetencoesFixas(termos, flagsReferencia())
	// Só fiança e IPTU: condomínio tem flag mas valor zero.
	assertDecimal(t, "retenções fixas", total, "150.00")
}

func TestReconciliacao(t *testing.T) {
	lancs := lancamento.NovoLivro()
	if _, err := lancs.Adicionar(lancamento.TipoReceita, "Taxa de mudança", dec(t, "200.00")); err != nil {
		t.Fatal(err)
	}
	if _, err := lancs.Adicionar(lancamento.TipoTaxa, "Segunda via de boleto", dec(t, "8.90")); err != nil {
		t.Fatal(err)
	}
	rets := retencao.NovoLivro()
	if _, err := rets.Adicionar(retencao.TipoAntecipado, "Adiantamento de maio", dec(t, "300.00")); err != nil {
		t.Fatal(err)
	}

	termos := termosReferencia(t)
	termos.ValorRetido = dec(t, "35.00")
	termos.ValorAntecipado = dec(t, "12.75")

	f, err := Calcular(termos, flagsReferencia(), tarifasReferencia(t), lancs, rets, modoMensal())
	if err != nil {
		t.Fatalf("calcular: %v", err)
	}
	if !f.RepasseLiquido.Equal(f.ValorBruto.Sub(f.TotalRetido)) {
		t.Fatalf("repasse %s != bruto %s - retido %s", f.RepasseLiquido, f.ValorBruto, f.TotalRetido)
	}
}

func TestIdempotencia(t *testing.T) {
	lancs := lancamento.NovoLivro()
	if _, err := lancs.Adicionar(lancamento.TipoDespesa, "Pintura", dec(t, "75.30")); err != nil {
		t.Fatal(err)
	}

	a, err := Calcular(termosReferencia(t), flagsReferencia(), tarifasReferencia(t),
		lancs, retencao.NovoLivro(), modoMensal())
	if err != nil {
		t.Fatalf("primeira execução: %v", err)
	}
	b, err := Calcular(termosReferencia(t), flagsReferencia(), tarifasReferencia(t),
		lancs, retencao.NovoLivro(), modoMensal())
	if err != nil {
		t.Fatalf("segunda execução: %v", err)
	}

	pares := []struct {
		campo string
		x, y  decimal.Decimal
	}{
		{"ValorBrutoBase", a.ValorBrutoBase, b.ValorBrutoBase},
		{"ValorBruto", a.ValorBruto, b.ValorBruto},
		{"AjustesExtras", a.AjustesExtras, b.AjustesExtras},
		{"ValorTaxaAdmin", a.ValorTaxaAdmin, b.ValorTaxaAdmin},
		{"TotalRetido", a.TotalRetido, b.TotalRetido},
		{"RepasseLiquido", a.RepasseLiquido, b.RepasseLiquido},
	}
	for _, p := range pares {
		if !p.x.Equal(p.y) {
			t.Fatalf("%s divergiu entre execuções: %s != %s", p.campo, p.x, p.y)
		}
	}
}

func TestBrutoNaoPositivoFalha(t *testing.T) {
	for _, valor := range []string{"1500.00", "1600.00"} {
		lancs := lancamento.NovoLivro()
		if _, err := lancs.Adicionar(lancamento.TipoDesconto, "Abatimento integral", dec(t, valor)); err != nil {
			t.Fatal(err)
		}
		_, err := Calcular(termosReferencia(t), flagsReferencia(), tarifasReferencia(t),
			lancs, retencao.NovoLivro(), modoMensal())
		if !errors.Is(err, ErrFaturaInvalida) {
			t.Fatalf("desconto %s: erro = %v, esperado ErrFaturaInvalida", valor, err)
		}
	}
}

func TestRepasseNegativoEhValido(t *testing.T) {
	rets := retencao.NovoLivro()
	if _, err := rets.Adicionar(retencao.TipoAntecipado, "Adiantamento do semestre", dec(t, "5000.00")); err != nil {
		t.Fatal(err)
	}

	f, err := Calcular(termosReferencia(t), flagsReferencia(), tarifasReferencia(t),
		lancamento.NovoLivro(), rets, modoMensal())
	if err != nil {
		t.Fatalf("calcular: %v", err)
	}
	if !f.RepasseLiquido.IsNegative() {
		t.Fatalf("repasse = %s, esperado negativo", f.RepasseLiquido)
	}
	// Mesmo negativo, o fechamento se mantém.
	if !f.RepasseLiquido.Equal(f.ValorBruto.Sub(f.TotalRetido)) {
		t.Fatal("reconciliação quebrada com repasse negativo")
	}
}

func TestEntradaComHistoricoRecusada(t *testing.T) {
	modo := Modo{Tipo: ModoEntrada, PossuiFaturamentoAnterior: true}
	_, err := Calcular(termosReferencia(t), flagsReferencia(), tarifasReferencia(t),
		lancamento.NovoLivro(), retencao.NovoLivro(), modo)
	if !errors.Is(err, ErrModoIndisponivel) {
		t.Fatalf("erro = %v, esperado ErrModoIndisponivel", err)
	}
}

func TestEntradaSemHistorico(t *testing.T) {
	modo := Modo{Tipo: ModoEntrada}
	f, err := Calcular(termosReferencia(t), flagsReferencia(), tarifasReferencia(t),
		lancamento.NovoLivro(), retencao.NovoLivro(), modo)
	if err != nil {
		t.Fatalf("calcular: %v", err)
	}
	assertDecimal(t, "ValorBruto", f.ValorBruto, "1500.00")
}

func TestRescisaoProporcional(t *testing.T) {
	modo := Modo{
		Tipo:        ModoRescisao,
		DataTermino: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), // 15 de 30 dias
		Estrategia:  EstrategiaDiasProporcionais,
	}
	f, err := Calcular(termosReferencia(t), FlagsRetencao{}, tarifasReferencia(t),
		lancamento.NovoLivro(), retencao.NovoLivro(), modo)
	if err != nil {
		t.Fatalf("calcular: %v", err)
	}
	// O rateio acontece antes de qualquer outro passo.
	assertDecimal(t, "ValorBrutoBase", f.ValorBrutoBase, "750.00")
	assertDecimal(t, "ValorBruto", f.ValorBruto, "750.00")
	assertDecimal(t, "ValorTaxaAdmin", f.ValorTaxaAdmin, "75.00")
}

func TestRescisaoMesIntegral(t *testing.T) {
	modo := Modo{
		Tipo:        ModoRescisao,
		DataTermino: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Estrategia:  EstrategiaMesIntegral,
	}
	f, err := Calcular(termosReferencia(t), FlagsRetencao{}, tarifasReferencia(t),
		lancamento.NovoLivro(), retencao.NovoLivro(), modo)
	if err != nil {
		t.Fatalf("calcular: %v", err)
	}
	assertDecimal(t, "ValorBrutoBase", f.ValorBrutoBase, "1500.00")
}
