package contrato

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Contrato
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Salvar insere um novo contrato
func (r *Repository) Salvar(c *Contrato) error {
	return r.DB.Create(c).Error
}

// BuscarPorID retorna um contrato pelo ID
func (r *Repository) BuscarPorID(id uint) (*Contrato, error) {
	var c Contrato
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Listar retorna todos os contratos
func (r *Repository) Listar() ([]Contrato, error) {
	var list []Contrato
	err := r.DB.Order("id").Find(&list).Error
	return list, err
}

// ListarPorStatus retorna os contratos com um determinado status.
func (r *Repository) ListarPorStatus(status string) ([]Contrato, error) {
	var list []Contrato
	err := r.DB.Where("status = ?", status).Find(&list).Error
	return list, err
}

// Atualizar salva alterações em um contrato existente
func (r *Repository) Atualizar(c *Contrato) error {
	return r.DB.Save(c).Error
}

// Deletar remove um contrato (soft delete)
func (r *Repository) Deletar(id uint) error {
	return r.DB.Delete(&Contrato{}, id).Error
}
