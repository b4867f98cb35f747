package admin

import "strings"

func upperCurrency(c string) string { return strings.ToUpper(c) }
