package demo

import "context"

// Runner 策略模式: 持有一个 Attack, 运行时可以替换
type Runner struct {
	attack    Attack
	reporters []Reporter
}

func NewRunner(a Attack) *Runner {
	return &Runner{attack: a}
}

func (r *Runner) SetAttack(a Attack) {
	r.attack = a
}

// Subscribe 观察者, 每次 Run 之后收到结果
func (r *Runner) Subscribe(rep Reporter) {
	r.reporters = append(r.reporters, rep)
}

func (r *Runner) Run(ctx context.Context) Result {
	res := r.attack.Run(ctx)
	r.notify(res)

	return res
}

func (r *Runner) notify(res Result) {
	for _, rep := range r.reporters {
		rep.Report(res)
	}
}
