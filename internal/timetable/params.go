package timetable

import "github.com/pkg/errors"

// Params - размеры задачи составления расписания.
type Params struct {
	Slots          int `yaml:"slots"`            // количество временных слотов
	Profs          int `yaml:"profs"`            // количество преподавателей
	Groups         int `yaml:"groups"`           // количество классов
	GroupsPerProf  int `yaml:"groups_per_prof"`  // классов у одного преподавателя
	ProfsPerGroup  int `yaml:"profs_per_group"`  // преподавателей у одного класса
	CoursesPerProf int `yaml:"courses_per_prof"` // занятий преподавателя в одном классе
}

func DefaultParams() Params {
	return Params{
		Slots:          20,
		Profs:          32,
		Groups:         16,
		GroupsPerProf:  3,
		ProfsPerGroup:  6,
		CoursesPerProf: 3,
	}
}

func (p Params) Validate() error {
	if p.Slots <= 0 || p.Profs <= 0 || p.Groups <= 0 {
		return errors.Errorf(
			"slots, profs и groups должны быть > 0 (получено %d, %d, %d)",
			p.Slots, p.Profs, p.Groups,
		)
	}
	if p.GroupsPerProf <= 0 || p.ProfsPerGroup <= 0 || p.CoursesPerProf <= 0 {
		return errors.Errorf(
			"groups_per_prof, profs_per_group и courses_per_prof должны быть > 0 (получено %d, %d, %d)",
			p.GroupsPerProf, p.ProfsPerGroup, p.CoursesPerProf,
		)
	}
	if p.Profs*p.GroupsPerProf != p.Groups*p.ProfsPerGroup {
		return errors.Errorf(
			"несовместимые параметры: profs*groups_per_prof=%d != groups*profs_per_group=%d",
			p.Profs*p.GroupsPerProf, p.Groups*p.ProfsPerGroup,
		)
	}
	if p.FreeSlots() < 0 {
		return errors.Errorf(
			"недостаточно слотов: нужно %d, доступно %d",
			p.CoursesPerProf*p.ProfsPerGroup, p.Slots,
		)
	}
	return nil
}

// FreeSlots - количество свободных слотов у каждого класса.
func (p Params) FreeSlots() int {
	return p.Slots - p.CoursesPerProf*p.ProfsPerGroup
}
