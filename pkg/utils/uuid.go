package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto aleatório, usado para ids internos
// de contas e para o sufixo de chaves sintéticas de identidade.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 8)
}
