package lancamento

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Lancamento
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Salvar insere um novo lançamento
func (r *Repository) Salvar(l *Lancamento) error {
	return r.DB.Create(l).Error
}

// ListarPorContrato retorna os lançamentos de um contrato em ordem de criação
func (r *Repository) ListarPorContrato(contratoID uint) ([]Lancamento, error) {
	var list []Lancamento
	err := r.DB.Where("contrato_id = ?", contratoID).Order("id").Find(&list).Error
	return list, err
}

// BuscarPorCodigo retorna um lançamento pelo código opaco
func (r *Repository) BuscarPorCodigo(codigo string) (*Lancamento, error) {
	var l Lancamento
	if err := r.DB.Where("codigo = ?", codigo).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// RemoverPorCodigo remove o lançamento com o código informado.
// Código inexistente não é erro.
func (r *Repository) RemoverPorCodigo(codigo string) error {
	return r.DB.Where("codigo = ?", codigo).Delete(&Lancamento{}).Error
}
