// internal/scheduler/scheduler.go
package scheduler

import "sort"

// TaskID — идентификатор запланированной задачи. Ноль - "нет задачи".
type TaskID uint64

type taskKind int

const (
	taskAfter taskKind = iota
	taskEvery
	taskWhen
)

type task struct {
	id        TaskID
	group     string
	kind      taskKind
	deadline  float64
	interval  float64
	cond      func() bool
	fn        func()
	cancelled bool
}

// Scheduler заменяет корутины: задачи с дедлайном или условием,
// которые продолжаются на одном из следующих тиков.
// Группы нужны для снятия всех таймеров волны разом.
type Scheduler struct {
	clock  *Clock
	tasks  map[TaskID]*task
	nextID TaskID
}

// New создает планировщик поверх часов.
func New(clock *Clock) *Scheduler {
	if clock == nil {
		clock = NewClock()
	}
	return &Scheduler{
		clock:  clock,
		tasks:  make(map[TaskID]*task),
		nextID: 1,
	}
}

// Clock возвращает часы планировщика.
func (s *Scheduler) Clock() *Clock {
	return s.clock
}

// Now — текущее игровое время.
func (s *Scheduler) Now() float64 {
	return s.clock.Now()
}

func (s *Scheduler) add(t *task) TaskID {
	t.id = s.nextID
	s.nextID++
	s.tasks[t.id] = t
	return t.id
}

// After выполняет fn через delay секунд игрового времени.
func (s *Scheduler) After(group string, delay float64, fn func()) TaskID {
	if delay < 0 {
		delay = 0
	}
	return s.add(&task{group: group, kind: taskAfter, deadline: s.clock.Now() + delay, fn: fn})
}

// Every выполняет fn каждые interval секунд, пока задачу не отменят.
func (s *Scheduler) Every(group string, interval float64, fn func()) TaskID {
	if interval <= 0 {
		return 0
	}
	return s.add(&task{group: group, kind: taskEvery, deadline: s.clock.Now() + interval, interval: interval, fn: fn})
}

// When выполняет fn один раз на первом тике, где cond() == true.
func (s *Scheduler) When(group string, cond func() bool, fn func()) TaskID {
	return s.add(&task{group: group, kind: taskWhen, cond: cond, fn: fn})
}

// Cancel снимает задачу. Отмена уже выполненной задачи ничего не делает.
func (s *Scheduler) Cancel(id TaskID) {
	if t, ok := s.tasks[id]; ok {
		t.cancelled = true
		delete(s.tasks, id)
	}
}

// CancelGroup снимает все задачи группы и возвращает их количество.
func (s *Scheduler) CancelGroup(group string) int {
	n := 0
	for id, t := range s.tasks {
		if t.group == group {
			t.cancelled = true
			delete(s.tasks, id)
			n++
		}
	}
	return n
}

// Pending сообщает, сколько задач группы еще ждут. Пустая группа - все задачи.
func (s *Scheduler) Pending(group string) int {
	if group == "" {
		return len(s.tasks)
	}
	n := 0
	for _, t := range s.tasks {
		if t.group == group {
			n++
		}
	}
	return n
}

// Advance двигает часы и выполняет созревшие задачи по порядку дедлайнов
// (при равенстве - в порядке создания). Задачи, созданные внутри колбэков,
// выполнятся не раньше следующего Advance.
func (s *Scheduler) Advance(dt float64) {
	if !s.clock.Advance(dt) {
		return
	}
	s.run()
}

func (s *Scheduler) run() {
	now := s.clock.Now()
	limit := s.nextID

	var timed, waits []*task
	for _, t := range s.tasks {
		if t.id >= limit {
			continue
		}
		switch t.kind {
		case taskWhen:
			waits = append(waits, t)
		default:
			if t.deadline <= now {
				timed = append(timed, t)
			}
		}
	}
	sort.Slice(timed, func(i, j int) bool {
		if timed[i].deadline != timed[j].deadline {
			return timed[i].deadline < timed[j].deadline
		}
		return timed[i].id < timed[j].id
	})
	sort.Slice(waits, func(i, j int) bool { return waits[i].id < waits[j].id })

	for _, t := range timed {
		if t.cancelled {
			continue
		}
		if t.kind == taskEvery {
			t.deadline += t.interval
		} else {
			delete(s.tasks, t.id)
		}
		t.fn()
	}

	for _, t := range waits {
		if t.cancelled || !t.cond() {
			continue
		}
		delete(s.tasks, t.id)
		t.fn()
	}
}
