package fatura

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fatura é o resultado de uma prestação de contas: o valor cobrado do
// inquilino, tudo que a administradora retém em nome do proprietário e o
// repasse líquido. Os três sempre fecham: RepasseLiquido =
// ValorBruto - TotalRetido, ao centavo.
type Fatura struct {
	gorm.Model

	ContratoID uint   `gorm:"not null;index" json:"contratoId"`
	Modo       string `gorm:"size:20;not null" json:"modo"`
	Status     string `gorm:"size:50;not null;default:'Aberta';index" json:"status"`

	// Referência (modo mensal)
	MesReferencia  int        `gorm:"default:0" json:"mesReferencia"`
	AnoReferencia  int        `gorm:"default:0" json:"anoReferencia"`
	DataVencimento *time.Time `json:"dataVencimento,omitempty"`

	// Rescisão
	DataTermino        *time.Time `json:"dataTermino,omitempty"`
	EstrategiaRescisao string     `gorm:"size:30" json:"estrategiaRescisao,omitempty"`

	// Valores calculados
	ValorBrutoBase    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valorBrutoBase"`
	AjustesExtras     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"ajustesExtras"`
	ValorBruto        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valorBruto"`
	ValorTaxaAdmin    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valorTaxaAdmin"`
	TaxaEmissao       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"taxaEmissao"`
	TaxaTransferencia decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"taxaTransferencia"`
	TotalRetido       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalRetido"`
	RepasseLiquido    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"repasseLiquido"`

	PercentualAdmin decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"percentualAdmin"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Fatura{})
}
