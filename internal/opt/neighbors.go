package opt

// NeighArgminCost просматривает окрестность s один раз и возвращает лучший
// не табуированный элемент (при равенстве - первый найденный), его стоимость
// и количество оценённых элементов.
//
// Само s входит в окрестность первым элементом, поэтому при пустом tabu
// результат никогда не хуже s. Если s табуировано, результатом может быть
// сосед хуже s.
//
// Если табуирована вся окрестность, возвращается лучший элемент без учёта
// табу и ok == false.
func NeighArgminCost[S any](pb Problem[S], s S, tabu []S) (best S, bestCost float64, steps int, ok bool) {
	for neighbor := range pb.AllNeighbors(s) {
		if contains(pb, tabu, neighbor) {
			continue
		}
		steps++
		c := pb.Cost(neighbor)
		if !ok || c < bestCost {
			best, bestCost = neighbor, c
			ok = true
		}
	}
	if ok || len(tabu) == 0 {
		return best, bestCost, steps, ok
	}

	// Все ходы табуированы: повторный проход без учёта табу
	best, bestCost, steps, _ = NeighArgminCost(pb, s, nil)
	return best, bestCost, steps, false
}

func contains[S any](pb Problem[S], set []S, s S) bool {
	for _, t := range set {
		if Same(pb, t, s) {
			return true
		}
	}
	return false
}
