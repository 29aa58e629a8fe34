package usuario

import (
	"gorm.io/gorm"
)

// Usuario representa um operador da administradora de imóveis.
type Usuario struct {
	gorm.Model
	Nome          string `json:"nome"`
	Email         string `json:"email" gorm:"unique;not null"`
	Senha         string `json:"-"`
	Administrador bool   `json:"administrador" gorm:"default:false"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
