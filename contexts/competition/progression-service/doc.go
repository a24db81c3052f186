// Package progressionservice manages the drawing competition: schools
// register participant counts per age category, submit winners once a round
// completes, and advancing winners open a registration at the next level.
// Level order is school, taluk, district, state; state is terminal.
package progressionservice
