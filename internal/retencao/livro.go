package retencao

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrValidacao indica retenção rejeitada antes de qualquer mutação.
var ErrValidacao = errors.New("retenção inválida")

// Livro mantém as retenções avulsas de uma prestação de contas em ordem de
// inserção, indexadas por código opaco.
type Livro struct {
	ordem []string
	itens map[string]RetencaoAvulsa
}

// NovoLivro cria um livro vazio.
func NovoLivro() *Livro {
	return &Livro{itens: make(map[string]RetencaoAvulsa)}
}

// NovoLivroCom cria um livro a partir de retenções já persistidas,
// preservando a ordem recebida.
func NovoLivroCom(itens []RetencaoAvulsa) *Livro {
	l := NovoLivro()
	for _, it := range itens {
		if it.Codigo == "" {
			continue
		}
		if _, existe := l.itens[it.Codigo]; existe {
			continue
		}
		l.ordem = append(l.ordem, it.Codigo)
		l.itens[it.Codigo] = it
	}
	return l
}

// Validar verifica tipo, descrição e valor de uma retenção.
func Validar(tipo, descricao string, valor decimal.Decimal) error {
	if !TipoValido(tipo) {
		return fmt.Errorf("%w: tipo desconhecido %q", ErrValidacao, tipo)
	}
	if strings.TrimSpace(descricao) == "" {
		return fmt.Errorf("%w: descrição obrigatória", ErrValidacao)
	}
	if !valor.IsPositive() {
		return fmt.Errorf("%w: valor deve ser maior que zero", ErrValidacao)
	}
	return nil
}

// Adicionar valida e registra uma retenção, devolvendo seu código.
// Em caso de erro o livro não é alterado.
func (l *Livro) Adicionar(tipo, descricao string, valor decimal.Decimal) (string, error) {
	if err := Validar(tipo, descricao, valor); err != nil {
		return "", err
	}
	codigo := uuid.NewString()
	l.ordem = append(l.ordem, codigo)
	l.itens[codigo] = RetencaoAvulsa{
		Codigo:    codigo,
		Tipo:      tipo,
		Descricao: descricao,
		Valor:     valor,
		CreatedAt: time.Now(),
	}
	return codigo, nil
}

// Remover descarta a retenção com o código informado. Código inexistente
// é um no-op.
func (l *Livro) Remover(codigo string) {
	if _, existe := l.itens[codigo]; !existe {
		return
	}
	delete(l.itens, codigo)
	for i, c := range l.ordem {
		if c == codigo {
			l.ordem = append(l.ordem[:i], l.ordem[i+1:]...)
			break
		}
	}
}

// Itens devolve as retenções em ordem de inserção.
func (l *Livro) Itens() []RetencaoAvulsa {
	out := make([]RetencaoAvulsa, 0, len(l.ordem))
	for _, c := range l.ordem {
		out = append(out, l.itens[c])
	}
	return out
}

// Total devolve a soma dos valores de todas as retenções, sem sinal:
// retido e antecipado sempre descontam do repasse.
func (l *Livro) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range l.itens {
		total = total.Add(it.Valor)
	}
	return total
}
