package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/ImovelarBR/api-locacao/internal/auth"
	"github.com/ImovelarBR/api-locacao/internal/contrato"
	"github.com/ImovelarBR/api-locacao/internal/fatura"
	"github.com/ImovelarBR/api-locacao/internal/lancamento"
	"github.com/ImovelarBR/api-locacao/internal/retencao"
	"github.com/ImovelarBR/api-locacao/internal/usuario"
	utilsdb "github.com/ImovelarBR/api-locacao/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	db, err := utilsdb.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := db.AutoMigrate(
		&usuario.Usuario{},
		&contrato.Contrato{},
		&lancamento.Lancamento{},
		&retencao.RetencaoAvulsa{},
		&fatura.Fatura{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(db)
	contratoHandler := contrato.NewHandler(db)
	lancamentoHandler := lancamento.NewHandler(db)
	retencaoHandler := retencao.NewHandler(db)
	faturaHandler := fatura.NewHandler(db)

	// Router
	r := mux.NewRouter()
	r.HandleFunc("/login", auth.LoginHandler(db)).Methods("POST")

	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de usuários (somente administradores)
	api.Handle("/usuarios", auth.ExigirAdministrador(http.HandlerFunc(usuarioHandler.Criar))).Methods("POST")
	api.Handle("/usuarios", auth.ExigirAdministrador(http.HandlerFunc(usuarioHandler.Listar))).Methods("GET")

	// Rotas de contratos
	api.HandleFunc("/contratos", contratoHandler.Criar).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/contratos/{id}", contratoHandler.Deletar).Methods("DELETE")

	// Rotas de lançamentos avulsos
	api.HandleFunc("/contratos/{id}/lancamentos", lancamentoHandler.Criar).Methods("POST")
	api.HandleFunc("/contratos/{id}/lancamentos", lancamentoHandler.ListarPorContrato).Methods("GET")
	api.HandleFunc("/lancamentos/{codigo}", lancamentoHandler.Remover).Methods("DELETE")

	// Rotas de retenções avulsas
	api.HandleFunc("/contratos/{id}/retencoes", retencaoHandler.Criar).Methods("POST")
	api.HandleFunc("/contratos/{id}/retencoes", retencaoHandler.ListarPorContrato).Methods("GET")
	api.HandleFunc("/retencoes/{codigo}", retencaoHandler.Remover).Methods("DELETE")

	// Rotas de prestação de contas
	api.HandleFunc("/contratos/{id}/faturas", faturaHandler.Gerar).Methods("POST")
	api.HandleFunc("/contratos/{id}/faturas", faturaHandler.ListarPorContrato).Methods("GET")
	api.HandleFunc("/faturas/{id}", faturaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/faturas/{id}/status", faturaHandler.AtualizarStatus).Methods("PUT")
	api.HandleFunc("/faturas/{id}/boleto", faturaHandler.Boleto).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}
