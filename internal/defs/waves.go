package defs

// EnemyGroup — группа одинаковых врагов внутри волны.
type EnemyGroup struct {
	EnemyID string `yaml:"enemy"`
	Count   int    `yaml:"count"`
}

// WaveManifest описывает одну волну: группы спавнятся строго по порядку.
type WaveManifest struct {
	Name   string       `yaml:"name"`
	Groups []EnemyGroup `yaml:"groups"`
}

// Total возвращает суммарное количество врагов в волне.
func (m WaveManifest) Total() int {
	total := 0
	for _, g := range m.Groups {
		total += g.Count
	}
	return total
}

// Scaled возвращает копию манифеста с количествами, умноженными на factor.
// Непустая группа никогда не схлопывается до нуля.
func (m WaveManifest) Scaled(factor float64) WaveManifest {
	out := WaveManifest{Name: m.Name, Groups: make([]EnemyGroup, 0, len(m.Groups))}
	for _, g := range m.Groups {
		count := g.Count
		if factor != 1 && count > 0 {
			count = int(float64(count)*factor + 0.5)
			if count < 1 {
				count = 1
			}
		}
		out.Groups = append(out.Groups, EnemyGroup{EnemyID: g.EnemyID, Count: count})
	}
	return out
}
