package lancamento

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tipos de lançamento avulso de uma prestação de contas.
const (
	TipoReceita  = "receita"
	TipoDespesa  = "despesa"
	TipoTaxa     = "taxa"
	TipoDesconto = "desconto"
	TipoAjuste   = "ajuste"
)

// Lancamento representa um acréscimo ou abatimento avulso no valor cobrado
// do inquilino, além dos termos fixos do contrato.
type Lancamento struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	ContratoID uint            `gorm:"not null;index" json:"contratoId"`
	Codigo     string          `gorm:"size:36;uniqueIndex;not null" json:"codigo"`
	Tipo       string          `gorm:"size:20;not null" json:"tipo"`
	Descricao  string          `gorm:"size:255;not null" json:"descricao"`
	Valor      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valor"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Lancamento{})
}

// TipoValido informa se o tipo de lançamento é conhecido.
func TipoValido(tipo string) bool {
	switch tipo {
	case TipoReceita, TipoDespesa, TipoTaxa, TipoDesconto, TipoAjuste:
		return true
	}
	return false
}

// Credito informa se o lançamento soma no valor cobrado.
// Receita e ajuste somam; despesa, taxa e desconto abatem.
func (l *Lancamento) Credito() bool {
	return l.Tipo == TipoReceita || l.Tipo == TipoAjuste
}
