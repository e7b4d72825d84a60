package export

import "strings"

const suffix = "_resume.pdf"

// Filename выводит имя файла из имени владельца: пробельные
// последовательности заменяются подчёркиванием, добавляется фиксированный
// суффикс. "Jane Doe" -> "Jane_Doe_resume.pdf".
func Filename(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "resume.pdf"
	}
	return strings.Join(fields, "_") + suffix
}
