package resume

import "strings"

// Обязательные поля. Проверяется только наличие, не формат.
var requiredFields = []struct {
	name    string
	value   func(Record) string
	message string
}{
	{FieldName, func(r Record) string { return r.Personal.Name }, "Name is required"},
	{FieldEmail, func(r Record) string { return r.Personal.Email }, "Email is required"},
	{FieldPhone, func(r Record) string { return r.Personal.Phone }, "Phone is required"},
}

// Validate возвращает сообщение об ошибке для каждого пустого обязательного
// поля. Пустая карта означает, что запись готова к экспорту. Строка из одних
// пробелов считается пустой.
func Validate(r Record) map[string]string {
	errs := make(map[string]string)
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(r)) == "" {
			errs[f.name] = f.message
		}
	}
	return errs
}
