package engine

import (
	"testing"

	"github.com/lixenwraith/gunslinger/component"
)

type countingSystem struct {
	name     string
	priority int
	order    *[]string
	inits    int
	updates  int
}

func (c *countingSystem) Init()         { c.inits++ }
func (c *countingSystem) Name() string  { return c.name }
func (c *countingSystem) Priority() int { return c.priority }
func (c *countingSystem) Update() {
	c.updates++
	if c.order != nil {
		*c.order = append(*c.order, c.name)
	}
}

func TestWorldSystemsRunInPriorityOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	w.AddSystem(&countingSystem{name: "cleanup", priority: 900, order: &order})
	w.AddSystem(&countingSystem{name: "movement", priority: 100, order: &order})
	w.AddSystem(&countingSystem{name: "combat", priority: 200, order: &order})

	w.RunSafe(w.UpdateLocked)

	want := []string{"movement", "combat", "cleanup"}
	if len(order) != len(want) {
		t.Fatalf("ran %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("position %d ran %s, want %s", i, order[i], want[i])
		}
	}
}

func TestWorldAddProjectileRoutesByOwner(t *testing.T) {
	w := NewWorld()
	w.AddProjectile(component.NewProjectile(component.OwnerPlayer, 0, 0, 1, 0))
	w.AddProjectile(component.NewProjectile(component.OwnerEnemy, 0, 0, 1, 0))
	w.AddProjectile(component.NewProjectile(component.OwnerEnemy, 0, 0, 1, 0))

	if len(w.PlayerShots) != 1 || len(w.EnemyShots) != 2 {
		t.Errorf("player=%d enemy=%d", len(w.PlayerShots), len(w.EnemyShots))
	}
}

func TestWorldPurge(t *testing.T) {
	w := NewWorld()
	enemies := []*component.Enemy{
		component.NewEnemy(1, 0),
		component.NewEnemy(2, 0),
		component.NewEnemy(3, 0),
		component.NewEnemy(4, 0),
	}
	for _, e := range enemies {
		w.AddEnemy(e)
	}
	enemies[0].Kill()
	enemies[2].Kill()

	shots := []*component.Projectile{
		component.NewProjectile(component.OwnerPlayer, 10, 0, 1, 0),
		component.NewProjectile(component.OwnerPlayer, 20, 0, 1, 0),
	}
	for _, p := range shots {
		w.AddProjectile(p)
	}
	shots[1].Retire()

	backing := w.Enemies
	r := w.Purge()

	if r.Enemies != 2 || r.PlayerShots != 1 || r.EnemyShots != 0 || r.Total() != 3 {
		t.Errorf("unexpected purge result %+v", r)
	}
	if len(w.Enemies) != 2 || w.Enemies[0].X != 2 || w.Enemies[1].X != 4 {
		t.Errorf("survivors out of order: %v, %v", w.Enemies[0], w.Enemies[1])
	}
	for _, e := range w.Enemies {
		if !e.Alive {
			t.Error("dead enemy survived purge")
		}
	}
	if backing[2] != nil || backing[3] != nil {
		t.Error("vacated tail not cleared")
	}
	if len(w.PlayerShots) != 1 || w.PlayerShots[0] != shots[0] {
		t.Error("active projectile removed")
	}
}

func TestWorldClearKeepsSystems(t *testing.T) {
	w := NewWorld()
	sys := &countingSystem{name: "x"}
	w.AddSystem(sys)
	w.AddEnemy(component.NewEnemy(0, 0))

	w.Clear()

	if w.Player != nil || len(w.Enemies) != 0 {
		t.Error("Clear left entities behind")
	}
	if len(w.Systems()) != 1 {
		t.Error("Clear removed systems")
	}
	if sys.inits != 0 {
		t.Error("Clear should not init systems")
	}
}
