package auth

import (
	"encoding/json"
	"net/http"

	"github.com/ImovelarBR/api-locacao/internal/usuario"
	"github.com/ImovelarBR/api-locacao/internal/utils"
	"gorm.io/gorm"
)

// LoginHandler autentica um usuário por e-mail e senha e devolve um JWT.
func LoginHandler(db *gorm.DB) http.HandlerFunc {
	repo := usuario.NewRepository(db)
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
			Senha string `json:"senha"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "JSON inválido", http.StatusBadRequest)
			return
		}

		u, err := repo.BuscarPorEmail(req.Email)
		if err != nil {
			http.Error(w, "Usuário ou senha inválidos", http.StatusUnauthorized)
			return
		}
		if !utils.VerificarSenha(u.Senha, req.Senha) {
			http.Error(w, "Usuário ou senha inválidos", http.StatusUnauthorized)
			return
		}

		token, err := GerarToken(u.ID, u.Administrador)
		if err != nil {
			http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": token})
	}
}
