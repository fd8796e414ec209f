package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// GenerateID gera um id alfanumérico curto, seguro para uso como id de elemento HTML
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
