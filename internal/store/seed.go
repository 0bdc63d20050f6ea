package store

import (
	"context"

	"upload-ai-api/internal/apperrors"
)

// defaultPrompts are the templates shipped with a fresh database. The
// {transcription} token is replaced with the stored transcript at completion time.
var defaultPrompts = []Prompt{
	{
		Title: "Título do YouTube",
		Template: "Seu papel é gerar três títulos chamativos para o vídeo abaixo:\n\n" +
			"'''\n{transcription}\n'''\n\n" +
			"Os títulos devem ter no máximo 60 caracteres e destacar o conteúdo principal do vídeo.",
	},
	{
		Title: "Descrição do YouTube",
		Template: "Seu papel é gerar uma descrição sucinta para o vídeo abaixo:\n\n" +
			"'''\n{transcription}\n'''\n\n" +
			"A descrição deve ter no máximo 80 palavras em primeira pessoa, contendo os pontos principais do vídeo.",
	},
}

// SeedPrompts inserts the default prompt templates into an empty database.
// Existing rows are left untouched.
func SeedPrompts(ctx context.Context, db *DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&Prompt{}).Count(&count).Error; err != nil {
		return apperrors.DatabaseError(err)
	}
	if count > 0 {
		return nil
	}
	for _, p := range defaultPrompts {
		if err := db.WithContext(ctx).Create(&p).Error; err != nil {
			return apperrors.DatabaseError(err)
		}
	}
	return nil
}
