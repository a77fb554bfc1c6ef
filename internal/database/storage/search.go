package storage

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern строит шаблон LIKE для поиска подстроки;
// спецсимволы LIKE во введённом тексте экранируются.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
