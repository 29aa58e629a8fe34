package retencao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Handler gerencia rotas de retenções avulsas
type Handler struct {
	Repository *Repository
}

// NewHandler cria um novo Handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repository: NewRepository(db)}
}

// CriarDTO é o corpo aceito na criação de uma retenção.
type CriarDTO struct {
	Tipo      string  `json:"tipo"`
	Descricao string  `json:"descricao"`
	Valor     float64 `json:"valor"`
}

// POST /contratos/{id}/retencoes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	contratoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}
	var dto CriarDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	valor := decimal.NewFromFloat(dto.Valor)
	if err := Validar(dto.Tipo, dto.Descricao, valor); err != nil {
		if errors.Is(err, ErrValidacao) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Erro ao validar retenção", http.StatusInternalServerError)
		return
	}
	ret := RetencaoAvulsa{
		ContratoID: uint(contratoID),
		Codigo:     uuid.NewString(),
		Tipo:       dto.Tipo,
		Descricao:  dto.Descricao,
		Valor:      valor,
	}
	if err := h.Repository.Salvar(&ret); err != nil {
		http.Error(w, "Erro ao salvar retenção", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ret)
}

// GET /contratos/{id}/retencoes
func (h *Handler) ListarPorContrato(w http.ResponseWriter, r *http.Request) {
	contratoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.ListarPorContrato(uint(contratoID))
	if err != nil {
		http.Error(w, "Erro ao listar retenções", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// DELETE /retencoes/{codigo}
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	codigo := mux.Vars(r)["codigo"]
	if err := h.Repository.RemoverPorCodigo(codigo); err != nil {
		http.Error(w, "Erro ao remover retenção", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
