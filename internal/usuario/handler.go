package usuario

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ImovelarBR/api-locacao/internal/utils"
	"gorm.io/gorm"
)

// Handler gerencia rotas de usuários da administradora
type Handler struct {
	Repository *Repository
}

// NewHandler cria um novo Handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repository: NewRepository(db)}
}

// CriarDTO é o corpo aceito na criação de um usuário. Senha vazia gera uma
// senha temporária devolvida na resposta.
type CriarDTO struct {
	Nome          string `json:"nome"`
	Email         string `json:"email"`
	Senha         string `json:"senha"`
	Administrador bool   `json:"administrador"`
}

// POST /usuarios
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CriarDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(dto.Email) == "" {
		http.Error(w, "E-mail obrigatório", http.StatusUnprocessableEntity)
		return
	}

	senha := dto.Senha
	senhaTemporaria := ""
	if senha == "" {
		var err error
		senhaTemporaria, err = utils.GerarSenhaTemporaria()
		if err != nil {
			http.Error(w, "Erro ao gerar senha temporária", http.StatusInternalServerError)
			return
		}
		senha = senhaTemporaria
	}
	hash, err := utils.HashSenha(senha)
	if err != nil {
		http.Error(w, "Erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{
		Nome:          dto.Nome,
		Email:         dto.Email,
		Senha:         hash,
		Administrador: dto.Administrador,
	}
	if err := h.Repository.Salvar(&u); err != nil {
		http.Error(w, "Erro ao salvar usuário", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{"usuario": u}
	if senhaTemporaria != "" {
		resp["senhaTemporaria"] = senhaTemporaria
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// GET /usuarios
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.Listar()
	if err != nil {
		http.Error(w, "Erro ao listar usuários", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}
