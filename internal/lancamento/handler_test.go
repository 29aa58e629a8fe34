package lancamento

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&Lancamento{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func router(db *gorm.DB) *mux.Router {
	h := NewHandler(db)
	r := mux.NewRouter()
	r.HandleFunc("/contratos/{id}/lancamentos", h.Criar).Methods("POST")
	r.HandleFunc("/contratos/{id}/lancamentos", h.ListarPorContrato).Methods("GET")
	r.HandleFunc("/lancamentos/{codigo}", h.Remover).Methods("DELETE")
	return r
}

func TestCriarEListar(t *testing.T) {
	db := setupTestDB(t)
	r := router(db)

	corpo := `{"tipo":"receita","descricao":"Taxa de mudança","valor":200}`
	req := httptest.NewRequest(http.MethodPost, "/contratos/7/lancamentos", strings.NewReader(corpo))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, corpo: %s", rec.Code, rec.Body.String())
	}
	var criado Lancamento
	if err := json.NewDecoder(rec.Body).Decode(&criado); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if criado.Codigo == "" {
		t.Fatal("lançamento criado sem código")
	}
	if criado.ContratoID != 7 {
		t.Fatalf("ContratoID = %d, esperado 7", criado.ContratoID)
	}

	req = httptest.NewRequest(http.MethodGet, "/contratos/7/lancamentos", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	var list []Lancamento
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode lista: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("lista = %d itens, esperado 1", len(list))
	}
}

func TestCriarInvalidoNaoPersiste(t *testing.T) {
	db := setupTestDB(t)
	r := router(db)

	casos := []string{
		`{"tipo":"receita","descricao":"","valor":10}`,
		`{"tipo":"receita","descricao":"Valor ruim","valor":0}`,
		`{"tipo":"multa","descricao":"Tipo ruim","valor":10}`,
	}
	for _, corpo := range casos {
		req := httptest.NewRequest(http.MethodPost, "/contratos/1/lancamentos", strings.NewReader(corpo))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("corpo %s: status = %d, esperado 422", corpo, rec.Code)
		}
	}

	list, err := NewRepository(db).ListarPorContrato(1)
	if err != nil {
		t.Fatalf("listar: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("lançamentos persistidos = %d, esperado 0", len(list))
	}
}

func TestRemoverPorCodigo(t *testing.T) {
	db := setupTestDB(t)
	r := router(db)

	corpo := `{"tipo":"despesa","descricao":"Pintura","valor":75.3}`
	req := httptest.NewRequest(http.MethodPost, "/contratos/1/lancamentos", strings.NewReader(corpo))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	var criado Lancamento
	if err := json.NewDecoder(rec.Body).Decode(&criado); err != nil {
		t.Fatalf("decode: %v", err)
	}

	req = httptest.NewRequest(http.MethodDelete, "/lancamentos/"+criado.Codigo, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("remover: status = %d", rec.Code)
	}

	// Remover de novo continua sendo no-op bem sucedido.
	req = httptest.NewRequest(http.MethodDelete, "/lancamentos/"+criado.Codigo, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("remover repetido: status = %d", rec.Code)
	}

	list, err := NewRepository(db).ListarPorContrato(1)
	if err != nil {
		t.Fatalf("listar: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("lançamentos restantes = %d, esperado 0", len(list))
	}
}
