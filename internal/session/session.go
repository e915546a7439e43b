// Package session — ядро бота: состояние пользователя, его хранилище
// и машина состояний, обрабатывающая входящие сообщения.
package session

// Step — текущий шаг диалога настройки профиля.
type Step string

const (
	StepNone     Step = ""
	StepWeight   Step = "weight"
	StepHeight   Step = "height"
	StepAge      Step = "age"
	StepActivity Step = "activity"
	StepCity     Step = "city"
	StepComplete Step = "complete"
)

// UserSession — состояние одного пользователя: прогресс настройки профиля,
// рассчитанные дневные нормы и дневные счетчики. Счетчики обнуляются один
// раз, при завершении настройки; автоматического сброса в полночь нет.
type UserSession struct {
	Step Step

	WeightKg    int
	HeightCm    int
	Age         int
	ActivityMin int
	City        string

	WaterGoalMl int
	CalorieGoal float64

	LoggedWaterMl  int
	LoggedCalories float64
	BurnedCalories int

	// AwaitingGrams взводится после успешного поиска продукта:
	// следующее обычное сообщение трактуется как граммы.
	// CaloriesPer100g имеет смысл только пока AwaitingGrams == true.
	AwaitingGrams   bool
	CaloriesPer100g float64
}
