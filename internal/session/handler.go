package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/vlkors/hydrobot/internal/errvalues"
	"github.com/vlkors/hydrobot/internal/lookup"
)

const (
	replySetupFirst    = "Сначала настройте профиль с помощью команды /set_profile."
	replyNumbersOnly   = "Пожалуйста, вводите только числа!"
	replyNotUnderstood = "Я не понимаю это сообщение. Используйте команды, чтобы начать."
)

// Handler — машина состояний бота. Единственная точка входа — Handle.
type Handler struct {
	store   *Store
	weather lookup.TemperatureProvider
	food    lookup.FoodProvider
}

func NewHandler(store *Store, weather lookup.TemperatureProvider, food lookup.FoodProvider) *Handler {
	return &Handler{
		store:   store,
		weather: weather,
		food:    food,
	}
}

// Handle обрабатывает одно входящее сообщение и возвращает текст ответа.
// Пустая строка означает, что отвечать нечего (нераспознанная команда).
func (h *Handler) Handle(ctx context.Context, chatID int64, text string) string {
	in := ParseIncoming(text)

	if in.IsCommand {
		return h.handleCommand(ctx, chatID, in)
	}

	sess, ok := h.store.Get(chatID)

	if ok && sess.AwaitingGrams {
		return h.handleGrams(sess, in.Text)
	}

	if ok && sess.Step != StepNone && sess.Step != StepComplete {
		return h.handleProfileStep(ctx, sess, in.Text)
	}

	return replyNotUnderstood
}

func (h *Handler) handleCommand(ctx context.Context, chatID int64, in Incoming) string {
	switch in.Command {
	case "start":
		return "Добро пожаловать! Настройте профиль с помощью команды /set_profile"
	case "set_profile":
		return h.handleSetProfile(chatID)
	case "log_water":
		return h.handleLogWater(chatID, in.Args)
	case "log_workout":
		return h.handleLogWorkout(chatID, in.Args)
	case "log_food":
		return h.handleLogFood(ctx, chatID, in.Args)
	case "check_progress":
		return h.handleCheckProgress(chatID)
	default:
		// незнакомые команды оставляем без ответа
		return ""
	}
}

// handleSetProfile заводит свежую сессию, молча затирая прежнюю.
func (h *Handler) handleSetProfile(chatID int64) string {
	h.store.Put(chatID, &UserSession{Step: StepWeight})

	return "Введите ваш вес (в кг):"
}

// completeSession возвращает сессию, только если профиль настроен до конца.
func (h *Handler) completeSession(chatID int64) (*UserSession, bool) {
	sess, ok := h.store.Get(chatID)
	if !ok || sess.Step != StepComplete {
		return nil, false
	}

	return sess, true
}

func (h *Handler) handleLogWater(chatID int64, args []string) string {
	sess, ok := h.completeSession(chatID)
	if !ok {
		return replySetupFirst
	}

	if len(args) < 1 {
		return "Пожалуйста, укажите количество воды в миллилитрах. Например: /log_water 500"
	}

	amount, err := strconv.Atoi(args[0])
	if err != nil {
		return replyNumbersOnly
	}

	sess.LoggedWaterMl += amount
	remaining := sess.WaterGoalMl - sess.LoggedWaterMl

	return fmt.Sprintf("Вы выпили %d мл воды. Осталось: %d мл.", amount, remaining)
}

func (h *Handler) handleLogWorkout(chatID int64, args []string) string {
	sess, ok := h.completeSession(chatID)
	if !ok {
		return replySetupFirst
	}

	if len(args) < 2 {
		return "Пожалуйста, укажите тип тренировки и длительность (в минутах). Например: /log_workout бег 30"
	}

	minutes, err := strconv.Atoi(args[1])
	if err != nil {
		return "Пожалуйста, укажите корректное время (в минутах)."
	}

	burned := (minutes / 30) * 200
	sess.BurnedCalories += burned

	// дополнительную воду только предлагаем, к выпитому не прибавляем
	extraWater := (minutes / 30) * 200

	return fmt.Sprintf("Вы сожгли %d ккал. Дополнительно выпейте %d мл воды.", burned, extraWater)
}

func (h *Handler) handleLogFood(ctx context.Context, chatID int64, args []string) string {
	sess, ok := h.completeSession(chatID)
	if !ok {
		return replySetupFirst
	}

	if len(args) < 1 {
		return "Пожалуйста, укажите название продукта на английском. Например: /log_food apple"
	}

	name := strings.ToLower(strings.Join(args, " "))

	food, err := h.food.FoodByName(ctx, name)
	if err != nil {
		if errors.Is(err, errvalues.ErrProductNotFound) {
			return fmt.Sprintf("Продукт с названием '%s' не найден.", name)
		}

		log.Error().Err(err).Str("product", name).Msg("не удалось получить данные о продукте")

		return "Не удалось получить информацию о продукте. Проверьте название или повторите попытку позже."
	}

	sess.CaloriesPer100g = food.CaloriesPer100g
	sess.AwaitingGrams = true

	return fmt.Sprintf("%s содержит %g ккал на 100 г. Сколько грамм вы съели?",
		capitalize(food.Name), food.CaloriesPer100g)
}

func (h *Handler) handleGrams(sess *UserSession, text string) string {
	grams, err := strconv.Atoi(text)
	if err != nil {
		return "Пожалуйста, введите количество граммов числом."
	}

	added := sess.CaloriesPer100g * float64(grams) / 100
	sess.LoggedCalories += added

	remaining := sess.CalorieGoal - sess.LoggedCalories

	sess.AwaitingGrams = false
	sess.CaloriesPer100g = 0

	return fmt.Sprintf("Записано: %.2f ккал.\nОсталось: %.2f ккал до выполнения цели.", added, remaining)
}

func (h *Handler) handleProfileStep(ctx context.Context, sess *UserSession, text string) string {
	if sess.Step == StepCity {
		sess.City = text
		return h.finishProfile(ctx, sess)
	}

	value, err := strconv.Atoi(text)
	if err != nil {
		return replyNumbersOnly
	}

	switch sess.Step {
	case StepWeight:
		sess.WeightKg = value
		sess.Step = StepHeight
		return "Введите ваш рост (в см):"
	case StepHeight:
		sess.HeightCm = value
		sess.Step = StepAge
		return "Введите ваш возраст:"
	case StepAge:
		sess.Age = value
		sess.Step = StepActivity
		return "Сколько минут активности у вас в день?"
	case StepActivity:
		sess.ActivityMin = value
		sess.Step = StepCity
		return "В каком городе вы находитесь?"
	default:
		return replyNotUnderstood
	}
}

// finishProfile завершает настройку: получает температуру (с запасным
// значением при сбое), считает нормы и обнуляет дневные счетчики.
func (h *Handler) finishProfile(ctx context.Context, sess *UserSession) string {
	temperature := h.weather.TemperatureByCity(ctx, sess.City)

	sess.WaterGoalMl = WaterGoalMl(sess.WeightKg, sess.ActivityMin, temperature)
	sess.CalorieGoal = CalorieGoal(sess.WeightKg, sess.HeightCm, sess.Age, sess.ActivityMin)

	sess.LoggedWaterMl = 0
	sess.LoggedCalories = 0
	sess.BurnedCalories = 0

	sess.Step = StepComplete

	return fmt.Sprintf("Профиль настроен! Ваша дневная норма воды: %d мл, калорий: %g ккал.",
		sess.WaterGoalMl, sess.CalorieGoal)
}

func (h *Handler) handleCheckProgress(chatID int64) string {
	sess, ok := h.completeSession(chatID)
	if !ok {
		return replySetupFirst
	}

	remainingWater := sess.WaterGoalMl - sess.LoggedWaterMl
	remainingCalories := sess.CalorieGoal - sess.LoggedCalories

	return fmt.Sprintf(
		"📊 Прогресс:\n"+
			"Выпито: %d мл из %d мл.\n"+
			"Осталось выпить: %d мл.\n"+
			"Потреблено: %g ккал из %g ккал.\n"+
			"Осталось съесть: %g ккал.\n"+
			"Сожжено: %d ккал.",
		sess.LoggedWaterMl, sess.WaterGoalMl, remainingWater,
		sess.LoggedCalories, sess.CalorieGoal, remainingCalories,
		sess.BurnedCalories,
	)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)

	return strings.ToUpper(string(r[0])) + string(r[1:])
}
