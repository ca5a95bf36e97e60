package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador de 21 caracteres, o tamanho das
// chaves primárias das tabelas
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 21)
}
