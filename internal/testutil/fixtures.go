package testutil

// Fixtures содержит общие тестовые данные профилей,
// чтобы не дублировать имена и очки в каждом тесте.
var Fixtures = struct {
	PlayerAlice string
	PlayerBob   string
	PlayerCarol string

	// Очки, которые дают локации (база и удвоение за усиленного врага).
	ForestScore       int
	ForestStrongScore int
	ManorScore        int
	LairScore         int
	LairStrongScore   int
}{
	PlayerAlice: "Alice",
	PlayerBob:   "Bob",
	PlayerCarol: "Carol",

	ForestScore:       10,
	ForestStrongScore: 20,
	ManorScore:        50,
	LairScore:         100,
	LairStrongScore:   200,
}
