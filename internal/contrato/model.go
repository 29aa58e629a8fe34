package contrato

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Contrato representa um contrato de locação administrado pela imobiliária
// e carrega todos os termos econômicos usados na prestação de contas.
type Contrato struct {
	gorm.Model

	Imovel       string `gorm:"size:255;not null" json:"imovel"`
	Inquilino    string `gorm:"size:255;not null" json:"inquilino"`
	Proprietario string `gorm:"size:255;not null" json:"proprietario"`
	Status       string `gorm:"size:50;default:'Ativo'" json:"status"` // ex: "Ativo", "Encerrado"

	// Valores fixos do contrato
	ValorAluguel        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"valorAluguel"`
	ValorCondominio     decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"valorCondominio"`
	ValorFCI            decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"valorFci"`
	ValorSeguroFianca   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"valorSeguroFianca"`
	ValorSeguroIncendio decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"valorSeguroIncendio"`
	ValorIPTU           decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"valorIptu"`

	// Flags de retenção: quando true, o encargo correspondente é retido
	// do repasse ao proprietário em vez de apenas repassado.
	RetemCondominio     bool `gorm:"default:false" json:"retemCondominio"`
	RetemFCI            bool `gorm:"default:false" json:"retemFci"`
	RetemSeguroFianca   bool `gorm:"default:false" json:"retemSeguroFianca"`
	RetemSeguroIncendio bool `gorm:"default:false" json:"retemSeguroIncendio"`
	RetemIPTU           bool `gorm:"default:false" json:"retemIptu"`

	// Valores pré-acordados descontados de todo repasse.
	ValorRetido     decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"valorRetido"`
	ValorAntecipado decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"valorAntecipado"`

	PercentualRepasse decimal.Decimal `gorm:"type:decimal(5,2);default:100" json:"percentualRepasse"`
	FormaPagamento    string          `gorm:"size:50" json:"formaPagamento"` // ex: "Boleto", "PIX"

	// Condições do boleto
	DiaVencimento      int             `gorm:"default:5" json:"diaVencimento"`
	DiaDesconto        int             `gorm:"default:0" json:"diaDesconto"`
	PercentualDesconto decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"percentualDesconto"`
	PercentualMulta    decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"percentualMulta"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contrato{})
}
