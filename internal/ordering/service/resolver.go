package service

import (
	"strings"

	"voiceorder-service/internal/match"
	"voiceorder-service/internal/ordering/model"
)

// DefaultThreshold: минимальная схожесть (0..100) для уверенного совпадения.
const DefaultThreshold = 80.0

// Resolve находит ближайший alias для произвольного (в т.ч. голосового) ввода.
// Ниже порога возвращает сам ввод (trim+lower), без ошибки.
// При равенстве очков побеждает alias, встретившийся раньше.
func Resolve(input string, aliases []string, threshold float64) model.Match {
	in := strings.ToLower(strings.TrimSpace(input))
	m := model.Match{Input: in, Name: in}
	if in == "" {
		return m
	}

	best, bestAlias := -1.0, ""
	for _, a := range aliases {
		s := match.Score(in, a)
		if s > best {
			best, bestAlias = s, a
			if s == 100 {
				break
			}
		}
	}
	if bestAlias == "" {
		return m
	}

	m.Alias, m.Score = bestAlias, best
	if best >= threshold {
		m.Name, m.Matched = bestAlias, true
	}
	return m
}
