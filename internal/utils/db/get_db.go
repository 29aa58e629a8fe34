package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

// GetDB abre a conexão com o banco usando as variáveis de ambiente
// DB_HOST, DB_PORT, DB_NAME, DB_USERNAME e DB_PASSWORD.
func GetDB() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	port, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		port = 5432 // porta padrão do PostgreSQL
	}
	name := os.Getenv("DB_NAME")
	return ConectarBanco(uint(port), host, name)
}
