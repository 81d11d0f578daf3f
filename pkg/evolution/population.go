package evolution

import "sort"

// sortByFitness ranks individuals by descending fitness. The sort is stable
// so equal scores keep their population order.
func sortByFitness(pop []Individual) {
	sort.SliceStable(pop, func(i, j int) bool {
		return pop[i].Fitness > pop[j].Fitness
	})
}

// averageFitness returns the mean fitness of the population.
func averageFitness(pop []Individual) float64 {
	if len(pop) == 0 {
		return 0
	}
	sum := 0.0
	for _, ind := range pop {
		sum += ind.Fitness
	}
	return sum / float64(len(pop))
}
