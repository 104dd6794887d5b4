package validate

// Cause — уточнение отказа правила (нужно там, где таблица решений различает причины).
type Cause string

const (
	CauseNone            Cause = ""
	CauseClassDatePassed Cause = "class-date-passed"
	CauseClassWithin48h  Cause = "class-within-48-hours"
	CauseQuantityRange   Cause = "quantity-range"
)

// Verdict — результат одного правила: {Pass} | {Fail} | {Fail, cause}.
// Enable — вклад правила во флаг enable checkout; итог — логическое И по всем правилам.
type Verdict struct {
	Failed bool
	Cause  Cause
	Enable bool
}

// Pass — правило пройдено.
func Pass() Verdict { return Verdict{Enable: true} }

// Fail — правило не пройдено без уточнения причины.
func Fail() Verdict { return Verdict{Failed: true, Enable: true} }

// FailWith — правило не пройдено с конкретной причиной.
func FailWith(cause Cause) Verdict { return Verdict{Failed: true, Cause: cause, Enable: true} }

// BlockCheckout — тот же вердикт, но с запретом оформления.
func (v Verdict) BlockCheckout() Verdict {
	v.Enable = false
	return v
}

// Is — отказ с указанной причиной.
func (v Verdict) Is(cause Cause) bool { return v.Failed && v.Cause == cause }
