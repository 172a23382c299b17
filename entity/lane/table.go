package lane

// DefaultTable is the grid's built-in 52-lane layout: 10 output
// boundary lanes, 8 input boundary lanes, and 34 internal lanes
// connecting the 16 intersections of the 4x4 grid. Lane IDs run
// 1000-1051. A deployment can override this with utils/config's
// Input.LaneTableFile instead.
var DefaultTable = []Lane{
	{ID: 1000, StartIntersection: 1, EndIntersection: 0, Length: 100.0, Category: OutputBoundary},
	{ID: 1001, StartIntersection: 2, EndIntersection: 0, Length: 300.0, Category: OutputBoundary},
	{ID: 1002, StartIntersection: 3, EndIntersection: 0, Length: 300.0, Category: OutputBoundary},
	{ID: 1003, StartIntersection: 4, EndIntersection: 0, Length: 200.0, Category: OutputBoundary},
	{ID: 1004, StartIntersection: 5, EndIntersection: 0, Length: 400.0, Category: OutputBoundary},
	{ID: 1005, StartIntersection: 12, EndIntersection: 0, Length: 400.0, Category: OutputBoundary},
	{ID: 1006, StartIntersection: 13, EndIntersection: 0, Length: 200.0, Category: OutputBoundary},
	{ID: 1007, StartIntersection: 13, EndIntersection: 0, Length: 200.0, Category: OutputBoundary},
	{ID: 1008, StartIntersection: 15, EndIntersection: 0, Length: 200.0, Category: OutputBoundary},
	{ID: 1009, StartIntersection: 16, EndIntersection: 0, Length: 400.0, Category: OutputBoundary},

	{ID: 1010, StartIntersection: 0, EndIntersection: 1, Length: 200.0, Category: InputBoundary},
	{ID: 1011, StartIntersection: 0, EndIntersection: 2, Length: 300.0, Category: InputBoundary},
	{ID: 1012, StartIntersection: 0, EndIntersection: 4, Length: 100.0, Category: InputBoundary},
	{ID: 1013, StartIntersection: 0, EndIntersection: 5, Length: 400.0, Category: InputBoundary},
	{ID: 1014, StartIntersection: 0, EndIntersection: 12, Length: 400.0, Category: InputBoundary},
	{ID: 1015, StartIntersection: 0, EndIntersection: 15, Length: 200.0, Category: InputBoundary},
	{ID: 1016, StartIntersection: 0, EndIntersection: 16, Length: 500.0, Category: InputBoundary},
	{ID: 1017, StartIntersection: 0, EndIntersection: 16, Length: 400.0, Category: InputBoundary},

	{ID: 1018, StartIntersection: 1, EndIntersection: 2, Length: 300.0, Category: Internal},
	{ID: 1019, StartIntersection: 2, EndIntersection: 3, Length: 500.0, Category: Internal},
	{ID: 1020, StartIntersection: 3, EndIntersection: 4, Length: 200.0, Category: Internal},
	{ID: 1021, StartIntersection: 4, EndIntersection: 8, Length: 300.0, Category: Internal},
	{ID: 1022, StartIntersection: 5, EndIntersection: 1, Length: 300.0, Category: Internal},
	{ID: 1023, StartIntersection: 5, EndIntersection: 6, Length: 500.0, Category: Internal},
	{ID: 1024, StartIntersection: 5, EndIntersection: 9, Length: 400.0, Category: Internal},
	{ID: 1025, StartIntersection: 6, EndIntersection: 5, Length: 500.0, Category: Internal},
	{ID: 1026, StartIntersection: 2, EndIntersection: 6, Length: 200.0, Category: Internal},
	{ID: 1027, StartIntersection: 6, EndIntersection: 2, Length: 200.0, Category: Internal},
	{ID: 1028, StartIntersection: 6, EndIntersection: 7, Length: 300.0, Category: Internal},
	{ID: 1029, StartIntersection: 7, EndIntersection: 6, Length: 300.0, Category: Internal},
	{ID: 1030, StartIntersection: 7, EndIntersection: 3, Length: 300.0, Category: Internal},
	{ID: 1031, StartIntersection: 7, EndIntersection: 8, Length: 300.0, Category: Internal},
	{ID: 1032, StartIntersection: 8, EndIntersection: 7, Length: 300.0, Category: Internal},
	{ID: 1033, StartIntersection: 8, EndIntersection: 12, Length: 200.0, Category: Internal},
	{ID: 1034, StartIntersection: 9, EndIntersection: 10, Length: 100.0, Category: Internal},
	{ID: 1035, StartIntersection: 9, EndIntersection: 13, Length: 400.0, Category: Internal},
	{ID: 1036, StartIntersection: 10, EndIntersection: 9, Length: 100.0, Category: Internal},
	{ID: 1037, StartIntersection: 10, EndIntersection: 11, Length: 150.0, Category: Internal},
	{ID: 1038, StartIntersection: 10, EndIntersection: 14, Length: 200.0, Category: Internal},
	{ID: 1039, StartIntersection: 11, EndIntersection: 10, Length: 150.0, Category: Internal},
	{ID: 1040, StartIntersection: 11, EndIntersection: 7, Length: 500.0, Category: Internal},
	{ID: 1041, StartIntersection: 11, EndIntersection: 15, Length: 400.0, Category: Internal},
	{ID: 1042, StartIntersection: 12, EndIntersection: 8, Length: 200.0, Category: Internal},
	{ID: 1043, StartIntersection: 12, EndIntersection: 16, Length: 200.0, Category: Internal},
	{ID: 1044, StartIntersection: 14, EndIntersection: 13, Length: 200.0, Category: Internal},
	{ID: 1045, StartIntersection: 14, EndIntersection: 10, Length: 200.0, Category: Internal},
	{ID: 1046, StartIntersection: 14, EndIntersection: 15, Length: 200.0, Category: Internal},
	{ID: 1047, StartIntersection: 15, EndIntersection: 14, Length: 200.0, Category: Internal},
	{ID: 1048, StartIntersection: 15, EndIntersection: 11, Length: 400.0, Category: Internal},
	{ID: 1049, StartIntersection: 15, EndIntersection: 16, Length: 500.0, Category: Internal},
	{ID: 1050, StartIntersection: 16, EndIntersection: 12, Length: 200.0, Category: Internal},
	{ID: 1051, StartIntersection: 16, EndIntersection: 15, Length: 500.0, Category: Internal},
}
