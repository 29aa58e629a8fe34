package fatura

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ImovelarBR/api-locacao/internal/contrato"
	"github.com/ImovelarBR/api-locacao/internal/lancamento"
	"github.com/ImovelarBR/api-locacao/internal/retencao"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de prestação de contas
type Handler struct {
	Repo      *Repository
	Contratos *contrato.Repository
	Lancs     *lancamento.Repository
	Retencoes *retencao.Repository
}

// NewHandler cria um novo Handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		Repo:      NewRepository(db),
		Contratos: contrato.NewRepository(db),
		Lancs:     lancamento.NewRepository(db),
		Retencoes: retencao.NewRepository(db),
	}
}

// POST /contratos/{id}/faturas
func (h *Handler) Gerar(w http.ResponseWriter, r *http.Request) {
	contratoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto GerarFaturaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	c, err := h.Contratos.BuscarPorID(uint(contratoID))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}

	possuiFaturamento := false
	if dto.Modo == ModoEntrada {
		possuiFaturamento, err = h.Repo.PossuiFaturas(c.ID)
		if err != nil {
			http.Error(w, "Erro ao consultar histórico de faturas", http.StatusInternalServerError)
			return
		}
	}

	lancs, err := h.Lancs.ListarPorContrato(c.ID)
	if err != nil {
		http.Error(w, "Erro ao carregar lançamentos", http.StatusInternalServerError)
		return
	}
	rets, err := h.Retencoes.ListarPorContrato(c.ID)
	if err != nil {
		http.Error(w, "Erro ao carregar retenções", http.StatusInternalServerError)
		return
	}

	f, err := Calcular(
		TermosDoContrato(c),
		FlagsDoContrato(c),
		dto.Tarifas(),
		lancamento.NovoLivroCom(lancs),
		retencao.NovoLivroCom(rets),
		dto.ModoCobranca(possuiFaturamento),
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrModoIndisponivel):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, ErrValidacao), errors.Is(err, ErrFaturaInvalida):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, "Erro ao calcular fatura", http.StatusInternalServerError)
		}
		return
	}

	f.ContratoID = c.ID
	if err := h.Repo.Create(f); err != nil {
		http.Error(w, "Erro ao salvar fatura", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(f)
}

// GET /contratos/{id}/faturas
func (h *Handler) ListarPorContrato(w http.ResponseWriter, r *http.Request) {
	contratoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.ListByContrato(uint(contratoID))
	if err != nil {
		http.Error(w, "Erro ao listar faturas", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// GET /faturas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	f, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Fatura não encontrada", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(f)
}

// PUT /faturas/{id}/status
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var dto struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.Status == "" {
		http.Error(w, "Status obrigatório", http.StatusBadRequest)
		return
	}
	if _, err := h.Repo.FindByID(uint(id)); err != nil {
		http.Error(w, "Fatura não encontrada", http.StatusNotFound)
		return
	}
	if err := h.Repo.UpdateStatus(uint(id), dto.Status); err != nil {
		http.Error(w, "Erro ao atualizar status", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GET /faturas/{id}/boleto?dataPagamento=2006-01-02
//
// Devolve o valor do boleto na data informada, com desconto de
// pontualidade ou multa de atraso do contrato aplicados sobre o valor
// bruto. Não altera a fatura persistida.
func (h *Handler) Boleto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	f, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "Fatura não encontrada", http.StatusNotFound)
		return
	}
	if f.DataVencimento == nil {
		http.Error(w, "Fatura sem data de vencimento", http.StatusUnprocessableEntity)
		return
	}
	c, err := h.Contratos.BuscarPorID(f.ContratoID)
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}

	dataPagamento := time.Now()
	if s := r.URL.Query().Get("dataPagamento"); s != "" {
		dataPagamento, err = time.Parse("2006-01-02", s)
		if err != nil {
			http.Error(w, "Data de pagamento inválida, use AAAA-MM-DD", http.StatusBadRequest)
			return
		}
	}

	valor := AjustarValorBoleto(
		f.ValorBruto,
		c.DiaDesconto,
		c.PercentualDesconto,
		c.PercentualMulta,
		dataPagamento,
		*f.DataVencimento,
	)
	json.NewEncoder(w).Encode(BoletoDTO{
		FaturaID:       f.ID,
		DataVencimento: *f.DataVencimento,
		DataPagamento:  dataPagamento,
		ValorBruto:     f.ValorBruto,
		ValorBoleto:    valor,
	})
}
