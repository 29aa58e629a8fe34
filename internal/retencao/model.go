package retencao

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tipos de retenção avulsa sobre o repasse ao proprietário.
// Ambos descontam do repasse; o tipo é informativo.
const (
	TipoRetido     = "retido"
	TipoAntecipado = "antecipado"
)

// RetencaoAvulsa representa um desconto pontual no repasse: um valor retido
// pela administradora ou a recuperação de um adiantamento já pago.
type RetencaoAvulsa struct {
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
	return db.AutoMigrate(&RetencaoAvulsa{})
}

// TipoValido informa se o tipo de retenção é conhecido.
func TipoValido(tipo string) bool {
	return tipo == TipoRetido || tipo == TipoAntecipado
}
