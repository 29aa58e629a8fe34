package fatura

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Fatura
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere uma nova fatura
func (r *Repository) Create(f *Fatura) error {
	return r.DB.Create(f).Error
}

// FindByID retorna uma fatura pelo ID
func (r *Repository) FindByID(id uint) (*Fatura, error) {
	var f Fatura
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// ListByContrato retorna todas as faturas de um contrato
func (r *Repository) ListByContrato(contratoID uint) ([]Fatura, error) {
	var list []Fatura
	err := r.DB.Where("contrato_id = ?", contratoID).Order("id").Find(&list).Error
	return list, err
}

// PossuiFaturas informa se o contrato já tem alguma fatura emitida.
// É o predicado de histórico usado para recusar cobrança de entrada.
func (r *Repository) PossuiFaturas(contratoID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&Fatura{}).Where("contrato_id = ?", contratoID).Count(&count).Error
	return count > 0, err
}

// UpdateStatus atualiza apenas o status de uma fatura.
func (r *Repository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&Fatura{}).Where("id = ?", id).Update("status", status).Error
}
