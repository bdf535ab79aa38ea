package model

// PackedPercentage returns the share of total container area covered by the
// placed items, in percent. It returns 0 when the containers have no area.
func PackedPercentage(placed []Item, containers []FreeRect) float64 {
	totalArea := 0
	for _, c := range containers {
		totalArea += c.Area()
	}
	if totalArea == 0 {
		return 0
	}

	usedArea := 0
	for _, it := range placed {
		usedArea += it.Area()
	}
	return float64(usedArea) / float64(totalArea) * 100.0
}

// ContainerUsage summarises how much of one container was filled.
type ContainerUsage struct {
	Container FreeRect `json:"container"`
	Items     int      `json:"items"`
	UsedArea  int      `json:"used_area"`
}

// TotalArea returns the container area.
func (u ContainerUsage) TotalArea() int {
	return u.Container.Area()
}

// Efficiency returns the usage percentage.
func (u ContainerUsage) Efficiency() float64 {
	ta := u.TotalArea()
	if ta == 0 {
		return 0
	}
	return float64(u.UsedArea) / float64(ta) * 100.0
}

// ContainerUsages returns one entry per container, in container order,
// counting the placed items recorded against each container id.
func ContainerUsages(placed []Item, containers []FreeRect) []ContainerUsage {
	usages := make([]ContainerUsage, len(containers))
	index := make(map[int]int, len(containers))
	for i, c := range containers {
		usages[i] = ContainerUsage{Container: c}
		if _, dup := index[c.ContainerID]; !dup {
			index[c.ContainerID] = i
		}
	}
	for _, it := range placed {
		id, ok := it.Container()
		if !ok {
			continue
		}
		if i, ok := index[id]; ok {
			usages[i].Items++
			usages[i].UsedArea += it.Area()
		}
	}
	return usages
}

// ItemsIn returns the placed items that belong to the given container.
func ItemsIn(placed []Item, containerID int) []Item {
	var items []Item
	for _, it := range placed {
		if id, ok := it.Container(); ok && id == containerID {
			items = append(items, it)
		}
	}
	return items
}
