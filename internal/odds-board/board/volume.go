package board

import (
	"math"
	"math/big"
	"strconv"
)

// FormatVolume formata o volume apostado para exibição.
// >= 1M: uma casa decimal com sufixo "M" (1500000 -> "$1.5M").
// Abaixo disso: milhares arredondados com sufixo "K" (950000 -> "$950K").
// Negativo e NaN são tratados como zero ("$0K").
func FormatVolume(v float64) string {
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	if v >= 1_000_000 {
		return "$" + oneDecimal(v/1_000_000) + "M"
	}
	k := math.Round(v / 1_000)
	return "$" + strconv.FormatFloat(k, 'f', 0, 64) + "K"
}

// oneDecimal arredonda o valor binário exato de f, empate para cima.
// 1.15 é guardado como 1.1499... e vira "1.1"; 1.25 é exato e vira "1.3".
func oneDecimal(f float64) string {
	if math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return new(big.Rat).SetFloat64(f).FloatString(1)
}
