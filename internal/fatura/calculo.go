package fatura

import (
	"fmt"

	"github.com/ImovelarBR/api-locacao/internal/lancamento"
	"github.com/ImovelarBR/api-locacao/internal/retencao"
)

// Calcular agrega a prestação de contas de um período: termos do contrato,
// flags de retenção, tarifas da administradora e os dois livros avulsos.
// A função é pura; entradas iguais produzem faturas idênticas.
//
// Ordem do cálculo:
//  1. aluguel base do período (rateado na rescisão);
//  2. efeito líquido dos lançamentos avulsos sobre o bruto;
//  3. encargos fixos retidos conforme as flags;
//  4. comissão administrativa sobre o bruto final;
//  5. total retido = fixos + comissão + taxas fixas + valores pré-acordados
//     + retenções avulsas;
//  6. repasse = bruto − total retido.
func Calcular(
	termos TermosContrato,
	flags FlagsRetencao,
	tarifas TabelaTarifas,
	lancamentos *lancamento.Livro,
	retencoes *retencao.Livro,
	modo Modo,
) (*Fatura, error) {
	if err := modo.Validar(); err != nil {
		return nil, err
	}

	base := modo.AluguelDoPeriodo(termos.ValorAluguel)
	ajustes := lancamentos.EfeitoLiquido()
	bruto := base.Add(ajustes)
	if !bruto.IsPositive() {
		return nil, fmt.Errorf("%w: aluguel base %s com ajustes %s resulta em %s",
			ErrFaturaInvalida, base, ajustes, bruto)
	}

	retencoesFixas := CalcularRetencoesFixas(termos, flags)
	taxaAdmin := tarifas.TaxaAdministracao(bruto)

	totalRetido := retencoesFixas.
		Add(taxaAdmin).
		Add(tarifas.TaxaEmissao).
		Add(tarifas.TaxaTransferencia).
		Add(termos.ValorRetido).
		Add(termos.ValorAntecipado).
		Add(retencoes.Total())

	// Repasse negativo é resultado válido: o proprietário fica devendo.
	repasse := bruto.Sub(totalRetido)

	f := &Fatura{
		Modo:              modo.Tipo,
		ValorBrutoBase:    base,
		AjustesExtras:     ajustes,
		ValorBruto:        bruto,
		ValorTaxaAdmin:    taxaAdmin,
		TaxaEmissao:       tarifas.TaxaEmissao,
		TaxaTransferencia: tarifas.TaxaTransferencia,
		TotalRetido:       totalRetido,
		RepasseLiquido:    repasse,
		PercentualAdmin:   tarifas.PercentualAdmin,
	}

	switch modo.Tipo {
	case ModoMensal:
		f.MesReferencia = modo.MesReferencia
		f.AnoReferencia = modo.AnoReferencia
		venc := modo.DataVencimento
		f.DataVencimento = &venc
	case ModoRescisao:
		termino := modo.DataTermino
		f.DataTermino = &termino
		f.EstrategiaRescisao = modo.Estrategia
	}

	return f, nil
}
