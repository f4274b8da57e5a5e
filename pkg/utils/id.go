package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength     = 6
)

// GenerateID gera os identificadores curtos usados nas tabelas e nas execuções agendadas
func GenerateID() (string, error) {
	return gonanoid.Generate(idCharacters, idLength)
}
