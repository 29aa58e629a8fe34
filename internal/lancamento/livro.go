package lancamento

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrValidacao indica lançamento rejeitado antes de qualquer mutação.
var ErrValidacao = errors.New("lançamento inválido")

// Livro mantém os lançamentos de uma prestação de contas em ordem de
// inserção, indexados por código opaco. O código identifica o lançamento
// para remoção; a ordem serve apenas para exibição e nunca altera o
// efeito líquido.
type Livro struct {
	ordem []string
	itens map[string]Lancamento
}

// NovoLivro cria um livro vazio.
func NovoLivro() *Livro {
	return &Livro{itens: make(map[string]Lancamento)}
}

// NovoLivroCom cria um livro a partir de lançamentos já persistidos,
// preservando a ordem recebida. Lançamentos sem código são ignorados.
func NovoLivroCom(itens []Lancamento) *Livro {
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

// Validar verifica tipo, descrição e valor de um lançamento.
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

// Adicionar valida e registra um lançamento, devolvendo seu código.
// Em caso de erro o livro não é alterado.
func (l *Livro) Adicionar(tipo, descricao string, valor decimal.Decimal) (string, error) {
	if err := Validar(tipo, descricao, valor); err != nil {
		return "", err
	}
	codigo := uuid.NewString()
	l.ordem = append(l.ordem, codigo)
	l.itens[codigo] = Lancamento{
		Codigo:    codigo,
		Tipo:      tipo,
		Descricao: descricao,
		Valor:     valor,
		CreatedAt: time.Now(),
	}
	return codigo, nil
}

// Remover descarta o lançamento com o código informado. Remover um código
// inexistente é um no-op.
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

// Itens devolve os lançamentos em ordem de inserção.
func (l *Livro) Itens() []Lancamento {
	out := make([]Lancamento, 0, len(l.ordem))
	for _, c := range l.ordem {
		out = append(out, l.itens[c])
	}
	return out
}

// Tamanho devolve a quantidade de lançamentos registrados.
func (l *Livro) Tamanho() int {
	return len(l.ordem)
}

// EfeitoLiquido devolve a soma assinada dos lançamentos:
// receita e ajuste somam; despesa, taxa e desconto abatem.
func (l *Livro) EfeitoLiquido() decimal.Decimal {
	total := decimal.Zero
	for _, it := range l.itens {
		if it.Credito() {
			total = total.Add(it.Valor)
		} else {
			total = total.Sub(it.Valor)
		}
	}
	return total
}
