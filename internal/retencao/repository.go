package retencao

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para RetencaoAvulsa
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Salvar insere uma nova retenção avulsa
func (r *Repository) Salvar(ret *RetencaoAvulsa) error {
	return r.DB.Create(ret).Error
}

// ListarPorContrato retorna as retenções de um contrato em ordem de criação
func (r *Repository) ListarPorContrato(contratoID uint) ([]RetencaoAvulsa, error) {
	var list []RetencaoAvulsa
	err := r.DB.Where("contrato_id = ?", contratoID).Order("id").Find(&list).Error
	return list, err
}

// RemoverPorCodigo remove a retenção com o código informado.
// Código inexistente não é erro.
func (r *Repository) RemoverPorCodigo(codigo string) error {
	return r.DB.Where("codigo = ?", codigo).Delete(&RetencaoAvulsa{}).Error
}
