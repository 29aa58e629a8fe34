package usuario

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Usuario
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Salvar insere um novo usuário
func (r *Repository) Salvar(u *Usuario) error {
	return r.DB.Create(u).Error
}

// BuscarPorEmail retorna um usuário pelo e-mail
func (r *Repository) BuscarPorEmail(email string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Listar retorna todos os usuários
func (r *Repository) Listar() ([]Usuario, error) {
	var list []Usuario
	err := r.DB.Order("id").Find(&list).Error
	return list, err
}
