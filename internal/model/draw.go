package model

import "time"

// DrawResult - результат одного тиража.
// На пару (DrawDate, DrawTime) допускается не более одной записи
type DrawResult struct {
	ID        int
	DrawDate  string // YYYY-MM-DD
	DrawTime  string // HH:MM:SS
	L2Result  string // 2 цифры
	D3Result  string // 3 цифры
	CreatedBy int
	CreatedAt time.Time
}

// PostDrawResult - запрос на публикацию результата тиража
type PostDrawResult struct {
	DrawDate string
	DrawTime string
	L2Result string
	D3Result string
}
