package models

import "strings"

// NormalizeText приводит текстовое поле к канонической форме:
// переводы строк заменяются пробелами, серии пробелов схлопываются
// в один, края обрезаются. Операция идемпотентна — повторная
// нормализация возвращает ту же строку.
func NormalizeText(value string) string {
	if value == "" {
		return ""
	}

	return strings.Join(strings.Fields(value), " ")
}
