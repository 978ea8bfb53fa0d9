package domain

// Animal type tags
const (
	TagDog Tag = "Dog"
	TagCat Tag = "Cat"
	TagCow Tag = "Cow"
)

// Dog barks.
type Dog struct{}

func (Dog) Tag() Tag     { return TagDog }
func (Dog) Name() string { return "Собака" }

func (d Dog) DisplayLines() []string {
	return []string{d.Name() + ": Гав-гав"}
}

// Cat meows.
type Cat struct{}

func (Cat) Tag() Tag     { return TagCat }
func (Cat) Name() string { return "Кошка" }

func (c Cat) DisplayLines() []string {
	return []string{c.Name() + ": Мяу"}
}

// Cow moos. Unlike the other animals it prints its name and sound on
// separate lines.
type Cow struct{}

func (Cow) Tag() Tag     { return TagCow }
func (Cow) Name() string { return "Корова" }

func (c Cow) DisplayLines() []string {
	return []string{c.Name() + ":", "Мууу"}
}

// DefaultAnimals returns the fixed demo list in insertion order.
func DefaultAnimals() []Entity {
	return []Entity{Dog{}, Cat{}, Cow{}}
}
