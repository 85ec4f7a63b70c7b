package mars

// yearStartDays holds the start of each Mars year from MinYear to MaxYear+1,
// in days since J2000. Each value is the instant the high-accuracy solar
// longitude crosses 0 degrees, solved offline by bisection.
var yearStartDays = [...]float64{
	-85033.147408649, // MY -99
	-84346.141661445, // MY -98
	-83659.147882596, // MY -97
	-82972.196413017, // MY -96
	-82285.224385653, // MY -95
	-81598.250096786, // MY -94
	-80911.310632185, // MY -93
	-80224.333944420, // MY -92
	-79537.340878944, // MY -91
	-78850.364345799, // MY -90
	-78163.392534297, // MY -89
	-77476.413724539, // MY -88
	-76789.476358029, // MY -87
	-76102.515086386, // MY -86
	-75415.520878319, // MY -85
	-74728.547214225, // MY -84
	-74041.597285913, // MY -83
	-73354.607065981, // MY -82
	-72667.636985816, // MY -81
	-71980.686654897, // MY -80
	-71293.699162356, // MY -79
	-70606.712912983, // MY -78
	-69919.757763942, // MY -77
	-69232.781641871, // MY -76
	-68545.813659060, // MY -75
	-67858.872898618, // MY -74
	-67171.876796105, // MY -73
	-66484.876007206, // MY -72
	-65797.919961873, // MY -71
	-65110.959997328, // MY -70
	-64423.979825319, // MY -69
	-63737.040969582, // MY -68
	-63050.076886151, // MY -67
	-62363.084365338, // MY -66
	-61676.101577909, // MY -65
	-60989.132964484, // MY -64
	-60302.149552247, // MY -63
	-59615.201929780, // MY -62
	-58928.249956280, // MY -61
	-58241.256087443, // MY -60
	-57554.271438603, // MY -59
	-56867.320485383, // MY -58
	-56180.337984415, // MY -57
	-55493.355608729, // MY -56
	-54806.410956351, // MY -55
	-54119.432702128, // MY -54
	-53432.443156535, // MY -53
	-52745.485348315, // MY -52
	-52058.520536263, // MY -51
	-51371.544244647, // MY -50
	-50684.606991384, // MY -49
	-49997.623943438, // MY -48
	-49310.617413652, // MY -47
	-48623.650611472, // MY -46
	-47936.696762175, // MY -45
	-47249.711218190, // MY -44
	-46562.762538299, // MY -43
	-45875.807471590, // MY -42
	-45188.815480157, // MY -41
	-44501.825473774, // MY -40
	-43814.857080146, // MY -39
	-43127.876278616, // MY -38
	-42440.918860113, // MY -37
	-41753.978117456, // MY -36
	-41066.993010142, // MY -35
	-40380.003826433, // MY -34
	-39693.050726599, // MY -33
	-39006.081089227, // MY -32
	-38319.089358059, // MY -31
	-37632.143851014, // MY -30
	-36945.174659420, // MY -29
	-36258.180733505, // MY -28
	-35571.212682638, // MY -27
	-34884.253557407, // MY -26
	-34197.269299055, // MY -25
	-33510.325595200, // MY -24
	-32823.355307124, // MY -23
	-32136.346498152, // MY -22
	-31449.369252657, // MY -21
	-30762.420675389, // MY -20
	-30075.439849905, // MY -19
	-29388.482321418, // MY -18
	-28701.539243311, // MY -17
	-28014.555008630, // MY -16
	-27327.562273367, // MY -15
	-26640.591769999, // MY -14
	-25953.616747937, // MY -13
	-25266.647513065, // MY -12
	-24579.709870085, // MY -11
	-23892.732236142, // MY -10
	-23205.736331308, // MY -9
	-22518.772751305, // MY -8
	-21831.811704395, // MY -7
	-21144.812993749, // MY -6
	-20457.859637412, // MY -5
	-19770.901258784, // MY -4
	-19083.908589745, // MY -3
	-18396.932970810, // MY -2
	-17709.980854951, // MY -1
	-17022.999455048, // MY 0
	-16336.048670447, // MY 1
	-15649.093943584, // MY 2
	-14962.089229088, // MY 3
	-14275.102546746, // MY 4
	-13588.153133182, // MY 5
	-12901.178891763, // MY 6
	-12214.207642266, // MY 7
	-11527.267692080, // MY 8
	-10840.289278797, // MY 9
	-10153.291680960, // MY 10
	-9466.312838067,  // MY 11
	-8779.342649549,  // MY 12
	-8092.364488094,  // MY 13
	-7405.425738448,  // MY 14
	-6718.460824675,  // MY 15
	-6031.465657550,  // MY 16
	-5344.494681506,  // MY 17
	-4657.543763518,  // MY 18
	-3970.548621535,  // MY 19
	-3283.585461360,  // MY 20
	-2596.638117873,  // MY 21
	-1909.649689952,  // MY 22
	-1222.665073561,  // MY 23
	-535.711752563,   // MY 24
	151.266015173,    // MY 25
	838.231141825,    // MY 26
	1525.178381254,   // MY 27
	2212.178555063,   // MY 28
	2899.175404746,   // MY 29
	3586.131049913,   // MY 30
	4273.095659736,   // MY 31
	4960.075632866,   // MY 32
	5647.014250177,   // MY 33
	6333.979981828,   // MY 34
	7020.974988129,   // MY 35
	7707.959095512,   // MY 36
	8394.922871072,   // MY 37
	9081.902995324,   // MY 38
	9768.848090648,   // MY 39
	10455.801447090,  // MY 40
	11142.795419890,  // MY 41
	11829.777741847,  // MY 42
	12516.728358726,  // MY 43
	13203.718662701,  // MY 44
	13890.698066585,  // MY 45
	14577.640894838,  // MY 46
	15264.623310562,  // MY 47
	15951.614719876,  // MY 48
	16638.572023471,  // MY 49
	17325.539772591,  // MY 50
	18012.513828993,  // MY 51
	18699.454280874,  // MY 52
	19386.441534168,  // MY 53
	20073.442000899,  // MY 54
	20760.404415362,  // MY 55
	21447.359224772,  // MY 56
	22134.343586171,  // MY 57
	22821.289028156,  // MY 58
	23508.245023605,  // MY 59
	24195.239233220,  // MY 60
	24882.233090883,  // MY 61
	25569.198795789,  // MY 62
	26256.179219878,  // MY 63
	26943.136626708,  // MY 64
	27630.081063039,  // MY 65
	28317.069239033,  // MY 66
	29004.058432114,  // MY 67
	29691.010168827,  // MY 68
	30377.986952626,  // MY 69
	31064.976543794,  // MY 70
	31751.915934749,  // MY 71
	32438.886280154,  // MY 72
	33125.879788831,  // MY 73
	33812.844381144,  // MY 74
	34499.803697515,  // MY 75
	35186.785745777,  // MY 76
	35873.730069474,  // MY 77
	36560.706904017,  // MY 78
	37247.712557410,  // MY 79
	37934.687274722,  // MY 80
	38621.638678875,  // MY 81
	39308.622767310,  // MY 82
	39995.579081391,  // MY 83
	40682.524617925,  // MY 84
	41369.511701771,  // MY 85
	42056.509032190,  // MY 86
	42743.476194218,  // MY 87
	43430.448345790,  // MY 88
	44117.414963730,  // MY 89
	44804.352226321,  // MY 90
	45491.330581697,  // MY 91
	46178.324772006,  // MY 92
	46865.284501742,  // MY 93
	47552.250781100,  // MY 94
	48239.250721077,  // MY 95
	48926.197892411,  // MY 96
	49613.159102779,  // MY 97
	50300.154911897,  // MY 98
	50987.130410369,  // MY 99
	51674.084496814,  // MY 100
}
