package session

// WaterGoalMl считает дневную норму воды в миллилитрах:
// 30 мл на кг веса, 500 мл за каждые полные 30 минут активности
// и 800 мл сверху, если на улице жарче 25 градусов.
func WaterGoalMl(weightKg, activityMin int, temperatureC float64) int {
	goal := weightKg*30 + 500*(activityMin/30)
	if temperatureC > 25 {
		goal += 800
	}

	return goal
}

// CalorieGoal считает дневную норму калорий: базовый метаболизм
// по Миффлину-Сан Жеору плюс 100 ккал за каждые полные 30 минут активности.
func CalorieGoal(weightKg, heightCm, age, activityMin int) float64 {
	base := 10*float64(weightKg) + 6.25*float64(heightCm) - 5*float64(age) + 5

	return base + 100*float64(activityMin/30)
}
