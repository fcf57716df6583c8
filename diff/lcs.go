package diff

import "github.com/jd-tools/jd/tree"

// longestCommonSubsequence computes the longest common subsequence of two
// hash-code sequences via the textbook O(n*m) dynamic-programming table
// plus backtrack.
func longestCommonSubsequence(lhs, rhs []tree.HashCode) []tree.HashCode {
	n, m := len(lhs), len(rhs)
	table := make([][]int, n+1)
	for i := range table {
		table[i] = make([]int, m+1)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if lhs[i] == rhs[j] {
				table[i+1][j+1] = table[i][j] + 1
			} else {
				table[i+1][j+1] = maxInt(table[i][j+1], table[i+1][j])
			}
		}
	}

	result := make([]tree.HashCode, 0, table[n][m])
	i, j := n, m
	for i > 0 && j > 0 {
		if lhs[i-1] == rhs[j-1] {
			result = append(result, lhs[i-1])
			i--
			j--
		} else if table[i-1][j] >= table[i][j-1] {
			i--
		} else {
			j--
		}
	}
	reverseHashCodes(result)
	return result
}

func reverseHashCodes(codes []tree.HashCode) {
	for i, j := 0, len(codes)-1; i < j; i, j = i+1, j-1 {
		codes[i], codes[j] = codes[j], codes[i]
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
