/*

Process of evaluation

Expression Text ->
	parse ->
Expression Tree (ast) ->
	eval ->
float64

Expression Tree (ast) ->
	format ->
Expression Text

*/
package calc
