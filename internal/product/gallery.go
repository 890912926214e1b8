package product

// NextImage advances a gallery index, wrapping from the last image to 0.
func NextImage(index, count int) int {
	if count <= 0 {
		return 0
	}
	return (normalize(index, count) + 1) % count
}

// PrevImage steps a gallery index back, wrapping from 0 to the last image.
func PrevImage(index, count int) int {
	if count <= 0 {
		return 0
	}
	return (normalize(index, count) - 1 + count) % count
}

func normalize(index, count int) int {
	if index < 0 || index >= count {
		return 0
	}
	return index
}
