package newick

// ValidExamples returns newicks that parse, ordered roughly by size. Not all
// of them are binary.
func ValidExamples() []string {
	return []string{
		"(1,1)",
		"(1,2)",
		"(2,1)",
		"(3,3)",
		"(1,(1,1))",
		"((1,1),1)",
		"(1,(2,3))",
		"(2,(1,1))",
		"((1,2),(3,4))",
		"((2,1),(1,3))",
		"(2,(3,(1,1)))",
		"((1,1),(1,1))",
		"(10,(20,(1,5)))",
		"(1,2,3)",
		"((1,1),(1,1),2)",
	}
}

// InvalidExamples returns strings that must be rejected by Parse.
func InvalidExamples() []string {
	return []string{
		"",
		"(",
		")",
		"()",
		"(1)",
		"((1,2))",
		"(0,1)",
		"(01,2)",
		"(1,)",
		"(,1)",
		"(1,2))",
		"((1,2)",
		"1,2",
		"(1,2)(3,4)",
		"(a,b)",
		"(-1,2)",
		"(1;2)",
	}
}
